package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlackNotify(t *testing.T) {
	var payload struct {
		Text string `json:"text"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	s := NewSlack(server.URL, "AnyToAny", nil)
	s.Notify("New deposit detected")

	assert.Contains(t, payload.Text, "AnyToAny] New deposit detected")
}

func TestSlackNotifySwallowsErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no_service", http.StatusInternalServerError)
	}))
	defer server.Close()

	s := NewSlack(server.URL, "AnyToAny", nil)
	assert.NotPanics(t, func() { s.Notify("boom") })
}
