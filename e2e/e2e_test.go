//go:build e2e
// +build e2e

package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"gorm.io/gorm"

	"carpooling-go/internal/config"
	"carpooling-go/internal/db"
	carpooldomain "carpooling-go/internal/domain/carpool"
	proposaldomain "carpooling-go/internal/domain/proposal"
	userdomain "carpooling-go/internal/domain/user"
	carpoolrepo "carpooling-go/internal/repository/postgres/carpool"
	proposalrepo "carpooling-go/internal/repository/postgres/proposal"
	userrepo "carpooling-go/internal/repository/postgres/user"
	"carpooling-go/internal/transport/httpserver"
	"carpooling-go/internal/transport/httpserver/handler"
	"carpooling-go/pkg/logger"
)

type testEnv struct {
	server    *httptest.Server
	db        *gorm.DB
	proposals *proposaldomain.Service
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.New(io.Discard, slog.LevelError, "text")
	cfg := config.Config{DB: config.DBConfig{DSN: dsn}}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	carpools := carpooldomain.NewService(carpoolrepo.NewPostgres(dbConn))
	proposals := proposaldomain.NewService(proposalrepo.NewPostgres(dbConn))

	handlers, err := handler.New(users, carpools, proposals, log)
	if err != nil {
		t.Fatalf("handlers: %v", err)
	}

	router := httpserver.NewRouter(cfg, handlers)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn, proposals: proposals}
}

func (e *testEnv) Close() {
	e.server.Close()
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.Exec("TRUNCATE proposals, intermediaries, carpools, users RESTART IDENTITY CASCADE").Error
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := http.PostForm(e.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func (e *testEnv) getJSON(t *testing.T, path string, dst interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(e.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if dst != nil {
		if err := json.Unmarshal(body, dst); err != nil {
			t.Fatalf("decode %s %q: %v", path, body, err)
		}
	}
	return resp
}

func TestEndToEnd(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	register := func(email, forename, surname string) *http.Response {
		return env.postForm(t, "/register", url.Values{
			"email":      {email},
			"forename":   {forename},
			"surname":    {surname},
			"department": {"Engineering"},
		})
	}

	resp := register("alice@example.com", "Alice", "Smith")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register organiser: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = register("alice@example.com", "Alice", "Smith")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = register("bob@example.com", "Bob", "Jones")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register rider: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = env.postForm(t, "/carpools", url.Values{
		"capacity":    {"4"},
		"origin":      {"1"},
		"destination": {"2"},
		"date":        {"2024-03-05"},
		"tdepart":     {"08:30"},
		"tarrive":     {"09:15"},
		"organiser":   {"1"},
		"state":       {"0"},
		"roundtrip":   {"false"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create carpool: status %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if strings.TrimSpace(string(body)) != "OK" {
		t.Fatalf("create carpool: body %q", body)
	}

	var carpools struct {
		Carpools []struct {
			ID        uint   `json:"id"`
			Capacity  string `json:"capacity"`
			Date      string `json:"date"`
			Depart    string `json:"tdepart"`
			Arrive    string `json:"tarrive"`
			Organiser string `json:"organiser"`
		} `json:"carpools"`
	}

	env.getJSON(t, "/carpools/1", &carpools)
	if len(carpools.Carpools) != 1 {
		t.Fatalf("organiser carpools: expected 1, got %d", len(carpools.Carpools))
	}
	got := carpools.Carpools[0]
	if got.Capacity != "0/4" || got.Date != "2024-03-05" || got.Depart != "08:30:00" || got.Arrive != "09:15:00" {
		t.Fatalf("unexpected carpool projection: %+v", got)
	}
	if got.Organiser != "Alice Smith" {
		t.Fatalf("organiser = %q", got.Organiser)
	}

	carpools.Carpools = nil
	env.getJSON(t, "/carpools/2", &carpools)
	if len(carpools.Carpools) != 0 {
		t.Fatalf("rider without membership: expected empty list, got %v", carpools.Carpools)
	}

	if _, err := env.proposals.Create(context.Background(), proposaldomain.CreateInput{
		UserID: 2, CarpoolID: 1, Cost: 7.25, Separation: 2,
	}); err != nil {
		t.Fatalf("seed proposal: %v", err)
	}

	resp = env.postForm(t, "/proposals", url.Values{"uid": {"2"}, "cid": {"1"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("accept proposal: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	carpools.Carpools = nil
	env.getJSON(t, "/carpools/2", &carpools)
	if len(carpools.Carpools) != 1 {
		t.Fatalf("accepted rider: expected 1 carpool, got %d", len(carpools.Carpools))
	}
	if carpools.Carpools[0].Capacity != "1/4" {
		t.Fatalf("occupancy after accept: %q", carpools.Carpools[0].Capacity)
	}

	var proposals struct {
		Proposals []struct {
			Accepted *int16  `json:"accepted"`
			Cost     float64 `json:"cost"`
		} `json:"proposals"`
	}
	env.getJSON(t, "/proposals/2", &proposals)
	if len(proposals.Proposals) != 1 {
		t.Fatalf("proposals: expected 1, got %d", len(proposals.Proposals))
	}
	if proposals.Proposals[0].Accepted == nil || *proposals.Proposals[0].Accepted != 1 {
		t.Fatalf("proposal not accepted: %+v", proposals.Proposals[0])
	}
}
