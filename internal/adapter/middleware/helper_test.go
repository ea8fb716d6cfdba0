package middleware

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestValidReqID(t *testing.T) {
	valid := []string{
		strings.Repeat("a", 32),
		"0123456789abcdef0123456789abcdef",
		"6f1b24c2-58a3-4f39-9a61-0c2b7d1e4f5a",
	}
	for _, v := range valid {
		if !validReqID(v) {
			t.Fatalf("rejected valid id %q", v)
		}
	}
	invalid := []string{"", "short", strings.Repeat("g", 32), "not-a-uuid-at-all"}
	for _, v := range invalid {
		if validReqID(v) {
			t.Fatalf("accepted invalid id %q", v)
		}
	}
}

func TestParseRequestAt(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	// epoch seconds
	got, err := parseRequestAt(strconv.FormatInt(now.Unix(), 10))
	if err != nil || !got.Equal(now) {
		t.Fatalf("epoch seconds: %v %v", got, err)
	}
	// epoch millis
	got, err = parseRequestAt(strconv.FormatInt(now.UnixMilli(), 10))
	if err != nil || !got.Equal(now) {
		t.Fatalf("epoch millis: %v %v", got, err)
	}
	// RFC3339 with zone
	got, err = parseRequestAt(now.Format(time.RFC3339))
	if err != nil || !got.Equal(now) {
		t.Fatalf("rfc3339: %v %v", got, err)
	}
	// naive timestamp without zone is rejected
	if _, err := parseRequestAt("2025-09-05T10:00:00"); err == nil {
		t.Fatal("accepted naive timestamp")
	}
	if _, err := parseRequestAt(""); err == nil {
		t.Fatal("accepted empty value")
	}
}

func TestBuildKey(t *testing.T) {
	k := buildKey("POST", "/advances", strings.Repeat("c", 32), strings.Repeat("1", 32))
	if !strings.HasPrefix(k, "idemp:fp:post:/advances:") {
		t.Fatalf("key = %q", k)
	}
}
