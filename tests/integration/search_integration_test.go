package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestSearchEndpointQuotaGuard drives a running tripdeck-api through one
// allowed search and one quota-blocked search. It needs postgres and the
// API reachable, so it is gated on TRIPDECK_TEST_DSN.
func TestSearchEndpointQuotaGuard(t *testing.T) {
	dsn := strings.TrimSpace(os.Getenv("TRIPDECK_TEST_DSN"))
	if dsn == "" {
		t.Skip("TRIPDECK_TEST_DSN not set; skipping end-to-end test")
	}
	baseURL := strings.TrimRight(envOrDefault("TRIPDECK_API_BASE_URL", "http://localhost:8080"), "/")
	client := &http.Client{Timeout: 90 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect postgres (%s): %v", redactedDSN(dsn), err)
	}
	t.Cleanup(func() { db.Close() })

	uid := fmt.Sprintf("u%d", time.Now().UnixNano())
	currentMonth := time.Now().UTC().Format("2006-01")

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS search_quota (
			uid TEXT PRIMARY KEY,
			searches_remaining INT NOT NULL DEFAULT 100,
			last_reset_month TEXT NOT NULL DEFAULT to_char(now(), 'YYYY-MM')
		)
	`); err != nil {
		t.Fatalf("ensure search_quota table: %v", err)
	}

	// Seed exactly one remaining search.
	if _, err := db.Exec(ctx, `
		INSERT INTO search_quota (uid, searches_remaining, last_reset_month)
		VALUES ($1, 1, $2)
		ON CONFLICT (uid) DO UPDATE SET
			searches_remaining = EXCLUDED.searches_remaining,
			last_reset_month = EXCLUDED.last_reset_month
	`, uid, currentMonth); err != nil {
		t.Fatalf("seed search_quota: %v", err)
	}

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()
		_, _ = db.Exec(cleanupCtx, "DELETE FROM search_quota WHERE uid = $1", uid)
	})

	waitForAPIReady(t, client, baseURL)

	status1, body1 := callSearch(t, client, baseURL, uid)
	if status1 != http.StatusOK {
		t.Fatalf("first call: expected %d, got %d, body=%s", http.StatusOK, status1, string(body1))
	}
	var okResp struct {
		RawText string            `json:"raw_text"`
		Blocks  []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(body1, &okResp); err != nil {
		t.Fatalf("first call: unmarshal response: %v, raw=%s", err, string(body1))
	}
	if strings.TrimSpace(okResp.RawText) == "" {
		t.Fatalf("first call: expected non-empty raw text, raw=%s", string(body1))
	}
	if len(okResp.Blocks) == 0 {
		t.Fatalf("first call: expected parsed blocks, raw=%s", string(body1))
	}

	status2, body2 := callSearch(t, client, baseURL, uid)
	if status2 != http.StatusTooManyRequests {
		t.Fatalf("second call: expected %d, got %d, body=%s", http.StatusTooManyRequests, status2, string(body2))
	}
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body2, &errResp); err == nil {
		if !strings.Contains(strings.ToLower(errResp.Error), "insufficient") {
			t.Fatalf("second call: expected insufficient searches error, got %q", errResp.Error)
		}
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT searches_remaining FROM search_quota WHERE uid = $1", uid).Scan(&remaining); err != nil {
		t.Fatalf("query remaining searches: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected searches_remaining=0 after 2 calls, got %d", remaining)
	}
}

func callSearch(t *testing.T, client *http.Client, baseURL, uid string) (int, []byte) {
	t.Helper()

	checkIn := time.Now().AddDate(0, 1, 0)
	payload, err := json.Marshal(map[string]any{
		"uid":         uid,
		"origin":      "Mumbai",
		"destination": "Paris",
		"check_in":    checkIn.Format("2006-01-02"),
		"check_out":   checkIn.AddDate(0, 0, 3).Format("2006-01-02"),
		"guests":      2,
		"rooms":       1,
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	// Distinct dates per uid are not needed: the second call must be
	// rejected by quota before the cache is consulted.
	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/trips/search", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call /api/trips/search: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp.StatusCode, body
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func redactedDSN(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at == -1 || scheme == -1 || at <= scheme+3 {
		return dsn
	}
	return dsn[:scheme+3] + "***:***" + dsn[at:]
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		if err == nil {
			resp, err := client.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}
