package main

import "testing"

func TestListenAddrDefault(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	if got := listenAddr(); got != ":8082" {
		t.Fatalf("unexpected default addr %s", got)
	}
}

func TestListenAddrOverride(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	if got := listenAddr(); got != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %s", got)
	}
}
