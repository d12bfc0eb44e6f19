package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"tulisan/models"
	"tulisan/pkg/htr"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func setupRoutes(r *gin.Engine) {
	r.POST("/register", registerHandler)
	r.POST("/login", loginHandler)
	r.POST("/refresh", refreshHandler)
	r.POST("/revoke_refresh", revokeRefreshHandler)
	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.GET("/me", meHandler)
	authGroup.POST("/profile", createProfileHandler)
	authGroup.GET("/profile", getProfileHandler)
	authGroup.POST("/uploads", uploadFileHandler)
	authGroup.GET("/uploads", listUploadsHandler)
	authGroup.GET("/uploads/:id", getUploadHandler)
	authGroup.GET("/transkrip", listTranskripHandler)
	authGroup.GET("/transkrip/:id", getTranskripHandler)
}

// serverEngine builds the recognition engine used by the upload path. Engine
// kind and model come from env so deployments can switch backends without a
// rebuild.
func serverEngine() (htr.Engine, error) {
	return htr.NewEngine(os.Getenv("HTR_ENGINE"), os.Getenv("HTR_MODEL"))
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		c.Set("username", username)
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

func meHandler(c *gin.Context) {
	usernameVal, _ := c.Get("username")
	if usernameVal == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "context missing username"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": usernameVal.(string)})
}

// getUserFromContext fetches the authenticated user using the username set by jwtAuthMiddleware.
func getUserFromContext(c *gin.Context) (*models.User, bool) {
	unameVal, _ := c.Get("username")
	if unameVal == nil {
		return nil, false
	}
	var user models.User
	if err := db.Where("username = ?", unameVal.(string)).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func registerHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Register(req.Username, req.Password); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user registered successfully"})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	tokenString, err := signAccessToken(user, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	refreshToken, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": tokenString, "refresh_token": refreshToken})
}

// signAccessToken issues an HS256 JWT with the role name resolved from RoleID.
func signAccessToken(user models.User, ttl time.Duration) (string, error) {
	roleName := ""
	if user.RoleID != nil {
		var r models.Role
		if err := db.First(&r, *user.RoleID).Error; err == nil {
			roleName = r.Name
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"role":     roleName,
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret)
}

// createAndStoreRefreshToken generates a random refresh token, stores its hash with expiry and returns the raw token.
func createAndStoreRefreshToken(userID uint) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	h := sha256.Sum256([]byte(token))
	rt := models.RefreshToken{UserID: userID, TokenHash: hex.EncodeToString(h[:]), ExpiresAt: time.Now().Add(30 * 24 * time.Hour)}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}
	return token, nil
}

func findRefreshTokenByRaw(token string) (*models.RefreshToken, error) {
	h := sha256.Sum256([]byte(token))
	var rt models.RefreshToken
	if err := db.Where("token_hash = ?", hex.EncodeToString(h[:])).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// refreshHandler exchanges a refresh token for a new access token and rotates the refresh token.
func refreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	var user models.User
	if err := db.First(&user, rt.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	tokenString, err := signAccessToken(user, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	// rotate: revoke existing and create new one
	db.Model(&models.RefreshToken{}).Where("id = ?", rt.ID).Update("revoked", true)
	newRT, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString, "refresh_token": newRT})
}

// revokeRefreshHandler revokes a given refresh token (useful on logout).
func revokeRefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "refresh token not found"})
		return
	}
	rt.Revoked = true
	if err := db.Save(rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refresh token revoked"})
}

func createProfileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile := models.Profile{UserID: user.ID, Name: req.Name, Email: req.Email, Phone: req.Phone}
	if err := db.Create(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": profile.ID})
}

func getProfileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var p models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// uploadFileHandler accepts a multipart handwriting image, stores it under a
// uuid-prefixed name and runs recognition. The transcript (when recognition
// succeeds) is persisted and linked to the upload; failures are recorded on
// the upload record instead of discarding the file.
func uploadFileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile missing"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > 10*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}
	// uuid prefix keeps concurrent uploads of same-named phone photos apart
	storedName := uuid.New().String() + filepath.Ext(file.Filename)
	baseDir := uploadBaseDir()
	fullPath := filepath.Join(baseDir, storedName)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mkdir failed"})
		return
	}
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	// If this profile already transcribed a file with this name, return it.
	var existingUp models.Upload
	if err := db.Where("profile_id = ? AND file_name = ?", profile.ID, file.Filename).First(&existingUp).Error; err == nil {
		_ = os.Remove(fullPath)
		c.JSON(http.StatusOK, gin.H{"id": existingUp.ID, "store_path": existingUp.StorePath, "transkrip_id": existingUp.TranskripID})
		return
	}

	up := models.Upload{
		ProfileID:   profile.ID,
		FileName:    file.Filename,
		StorePath:   storedName,
		ContentType: file.Header.Get("Content-Type"),
	}
	if err := db.Create(&up).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
		return
	}

	engine, err := serverEngine()
	if err != nil {
		// Record the failure so cmd_retry_failed can pick the row up once the
		// engine config is fixed.
		log.Printf("engine unavailable for upload %d: %v", up.ID, err)
		up.Failed = true
		up.FailedReason = "engine unavailable: " + err.Error()
		db.Save(&up)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "engine unavailable"})
		return
	}
	defer engine.Close()
	text, err := engine.Recognize(fullPath)
	if err != nil {
		log.Printf("recognition failed for upload %d (%s): %v", up.ID, file.Filename, err)
		up.Failed = true
		up.FailedReason = err.Error()
		db.Save(&up)
		c.JSON(http.StatusOK, gin.H{"id": up.ID, "store_path": storedName, "transkrip_id": nil, "error": "recognition failed"})
		return
	}

	tk := models.Transkrip{UserID: user.ID, FileName: file.Filename, Text: text, Engine: engineName()}
	if err := db.Create(&tk).Error; err != nil {
		// unique user+file: link the existing transcript instead
		var existing models.Transkrip
		if err2 := db.Where("user_id = ? AND file_name = ?", user.ID, file.Filename).First(&existing).Error; err2 == nil {
			tk = existing
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "transcript save failed"})
			return
		}
	}
	up.TranskripID = &tk.ID
	db.Save(&up)
	c.JSON(http.StatusOK, gin.H{"id": up.ID, "store_path": storedName, "transkrip_id": tk.ID, "text": text})
}

func engineName() string {
	if v := os.Getenv("HTR_ENGINE"); v != "" {
		return v
	}
	return "tesseract"
}

// listTranskripHandler lists recent transcripts for the authenticated user (admin sees all).
func listTranskripHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var items []models.Transkrip
	q := db.Model(&models.Transkrip{})
	if role != "administrator" {
		q = q.Where("user_id = ?", user.ID)
	}
	if err := q.Order("id desc").Limit(200).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func getTranskripHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var tk models.Transkrip
	if err := db.First(&tk, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if role != "administrator" && tk.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, tk)
}

// listUploadsHandler returns uploads; admin sees all, user only own profile's uploads.
func listUploadsHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var profile models.Profile
	db.Where("user_id = ?", user.ID).First(&profile)
	var uploads []models.Upload
	q := db.Model(&models.Upload{})
	if role != "administrator" {
		q = q.Where("profile_id = ?", profile.ID)
	}
	if err := q.Order("id desc").Limit(100).Find(&uploads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, uploads)
}

// getUploadHandler returns a single upload if admin or owner.
func getUploadHandler(c *gin.Context) {
	role, _ := c.Get("role")
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var profile models.Profile
	db.Where("user_id = ?", user.ID).First(&profile)
	var up models.Upload
	if err := db.First(&up, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if role != "administrator" && up.ProfileID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, up)
}
