package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTasksDecodesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/tasks" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date"); got != "2024-01-15" {
			t.Errorf("date query = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Run","is_completed":true},{"id":2,"title":"Read","is_completed":false}]`))
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, srv.Client())
	tasks, err := c.Tasks(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[0].ID != 1 || !tasks[0].Done || tasks[1].Done {
		t.Fatalf("decoded tasks wrong: %+v", tasks)
	}
}

func TestToggleTaskSendsBody(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/task/toggle" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, srv.Client())
	if err := c.ToggleTask(context.Background(), 7, true); err != nil {
		t.Fatalf("ToggleTask failed: %v", err)
	}
	if got["id"] != float64(7) || got["completed"] != true {
		t.Fatalf("body = %v", got)
	}
}

func TestToggleProfessionTaskReturnsAggregate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","done":4,"total":10,"pct":40}`))
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, srv.Client())
	stats, err := c.ToggleProfessionTask(context.Background(), 3, true)
	if err != nil {
		t.Fatalf("ToggleProfessionTask failed: %v", err)
	}
	if stats.Target != 10 || stats.Completed != 4 {
		t.Fatalf("stats = %+v, want total 10 / done 4", stats)
	}
}

func TestAddProfessionTaskReturnsID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["title"] != "Study heaps" {
			t.Errorf("title = %v", body["title"])
		}
		_, _ = w.Write([]byte(`{"status":"success","id":42}`))
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, srv.Client())
	id, err := c.AddProfessionTask(context.Background(), "Study heaps")
	if err != nil {
		t.Fatalf("AddProfessionTask failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}
}

func TestNonSuccessStatusIsErrStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHTTP(srv.URL, srv.Client())
	err := c.DeleteProfessionTask(context.Background(), 9)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("error %v does not wrap ErrStatus", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) {
		t.Fatalf("error %v is not an OpError", err)
	}
	if opErr.Op != "delete" || opErr.ID != 9 {
		t.Fatalf("OpError = %+v", opErr)
	}
}

func TestContextCancellationPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewHTTP(srv.URL, srv.Client())
	if _, err := c.Tasks(ctx, "2024-01-15"); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
}
