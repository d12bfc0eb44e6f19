package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"path/filepath"

	"tulisan/pkg/htr"

	_ "github.com/lib/pq"
)

// cmd_retry_failed re-runs recognition for uploads flagged failed, typically
// after a tessdata upgrade or an ollama outage. Raw SQL on purpose: this is a
// maintenance pass that should see exactly what is in the tables.
func main() {
	base := flag.String("base", "uploads", "base dir for stored images")
	engineKind := flag.String("engine", "", "recognition engine (tesseract, ollama)")
	model := flag.String("model", "", "model identifier")
	limit := flag.Int("limit", 50, "max uploads to retry in one run")
	flag.Parse()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	engine, err := htr.NewEngine(*engineKind, *model)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer engine.Close()

	rows, err := db.Query(`SELECT up.id, up.file_name, up.store_path, p.user_id
		FROM uploads up
		JOIN profiles p ON p.id = up.profile_id
		WHERE up.failed = true AND up.transkrip_id IS NULL
		ORDER BY up.id LIMIT $1`, *limit)
	if err != nil {
		log.Fatalf("query: %v", err)
	}
	defer rows.Close()

	todo, err := collectFailedUploads(rows)
	if err != nil {
		log.Fatalf("read failed uploads: %v", err)
	}

	retried, fixed := 0, 0
	for _, r := range todo {
		path := filepath.Join(*base, r.fname)
		if r.store.Valid && r.store.String != "" {
			path = filepath.Join(*base, r.store.String)
		}
		retried++
		text, err := engine.Recognize(path)
		if err != nil {
			log.Printf("upload %d still failing (%s): %v", r.id, path, err)
			continue
		}
		var tkID int64
		err = db.QueryRow(`INSERT INTO transkrips (created_at, updated_at, user_id, file_name, text, engine)
			VALUES (now(), now(), $1, $2, $3, $4)
			ON CONFLICT (user_id, file_name) DO UPDATE SET text = EXCLUDED.text, updated_at = now()
			RETURNING id`, r.userID, r.fname, text, engineLabel(*engineKind)).Scan(&tkID)
		if err != nil {
			log.Printf("upload %d: save transcript: %v", r.id, err)
			continue
		}
		if _, err := db.Exec(`UPDATE uploads SET failed = false, failed_reason = '', transkrip_id = $1, updated_at = now() WHERE id = $2`, tkID, r.id); err != nil {
			log.Printf("upload %d: update: %v", r.id, err)
			continue
		}
		fixed++
		log.Printf("upload %d recovered (%d chars)", r.id, len(text))
	}
	log.Printf("retry complete: %d retried, %d recovered", retried, fixed)
}

type uploadRow struct {
	id     int64
	fname  string
	store  sql.NullString
	userID int64
}

// collectFailedUploads drains the query. A mid-iteration error aborts the
// batch instead of silently truncating it.
func collectFailedUploads(rows *sql.Rows) ([]uploadRow, error) {
	var todo []uploadRow
	for rows.Next() {
		var r uploadRow
		if err := rows.Scan(&r.id, &r.fname, &r.store, &r.userID); err != nil {
			return nil, err
		}
		todo = append(todo, r)
	}
	return todo, rows.Err()
}

func engineLabel(kind string) string {
	if kind == "" {
		return "tesseract"
	}
	return kind
}
