package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"medinfo-be/internal/panel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	// Flag values outlive a single Execute
	kendraLat, kendraLng = "", ""
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLoginWhoamiLogout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Login successful"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := t.TempDir()
	t.Setenv("MEDINFO_API_URL", srv.URL)
	t.Setenv("MEDINFO_SESSION_FILE", filepath.Join(dir, "session.json"))
	t.Setenv("MEDINFO_LOG_FILE", filepath.Join(dir, "cli.log"))

	out, err := execute(t, "login", "alice", "-p", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as alice.")

	out, err = execute(t, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "alice\n", out)

	_, err = execute(t, "logout")
	require.NoError(t, err)

	_, err = execute(t, "whoami")
	assert.ErrorIs(t, err, errNotSignedIn)
}

// fakeBackend serves the REST routes the tool commands call.
type fakeBackend struct {
	mu          sync.Mutex
	saved       []map[string]interface{}
	nearbyCalls int
	nearbyQuery string
}

var paracetamol = map[string]interface{}{
	"id": 1, "name": "Paracetamol", "generic": "Acetaminophen", "company": "BrandA", "price": 10,
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/medicines/search", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("q") {
		case "para":
			writeJSON(w, http.StatusOK, map[string]interface{}{"results": []interface{}{paracetamol}})
		case "boom":
			writeJSON(w, http.StatusInternalServerError, map[string]string{"code": "500", "detail": "db down"})
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{"results": []interface{}{}})
		}
	})
	mux.HandleFunc("/medicines/generic", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "Paracetamol" {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"generic": "Acetaminophen",
				"brands": []interface{}{
					map[string]interface{}{"id": 1, "name": "Paracetamol", "company": "BrandA", "price": 10},
					map[string]interface{}{"id": 2, "name": "Crocin", "company": "GSK", "price": 22.5},
				},
			})
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Medicine not found", "suggestion": "Paracetamol"})
	})
	mux.HandleFunc("/users/save", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username   string `json:"username"`
			MedicineID uint   `json:"medicine_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.MedicineID != 1 {
			writeJSON(w, http.StatusNotFound, map[string]string{"code": "404", "detail": "Medicine not found"})
			return
		}
		b.mu.Lock()
		b.saved = []map[string]interface{}{paracetamol}
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Medicine saved successfully"})
	})
	mux.HandleFunc("/users/saved/alice", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{"saved": append([]map[string]interface{}{}, b.saved...)})
	})
	mux.HandleFunc("/essentials/", func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimPrefix(r.URL.Path, "/essentials/") {
		case "":
			writeJSON(w, http.StatusOK, map[string]interface{}{"categories": []string{"pain", "fever"}})
		case "pain":
			writeJSON(w, http.StatusOK, map[string]interface{}{"medicines": []interface{}{paracetamol}})
		default:
			writeJSON(w, http.StatusOK, map[string]interface{}{"medicines": []interface{}{}})
		}
	})
	mux.HandleFunc("/kendra/nearby", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.nearbyCalls++
		b.nearbyQuery = r.URL.RawQuery
		b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{"kendras": []interface{}{
			map[string]interface{}{"id": 1, "name": "Kendra CP", "lat": 28.6315, "lng": 77.2167, "distance_km": 2.13},
		}})
	})
	mux.HandleFunc("/price-comparison", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		prices := []interface{}{}
		if req["medicine_name"] == "Crocin" {
			prices = append(prices, map[string]string{"store": "1mg", "price": "Rs.18", "url": "https://1mg.com/crocin"})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"medicine_name": req["medicine_name"], "prices": prices})
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["medicine_name"] != "crocin" {
			writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{"code": 503, "detail": "Web search is not configured on the server."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"identified_medicine":    "Crocin",
			"composition":            "Paracetamol 500mg",
			"generic_name":           "Paracetamol",
			"generic_info_paragraph": "An analgesic.",
			"summary":                map[string][]string{"uses": {"Fever", "Headache"}, "warnings": {"Liver disease"}},
			"alternatives":           []map[string]string{{"brand_name": "Dolo 650", "manufacturer": "Micro Labs"}},
		})
	})
	mux.HandleFunc("/assistant/chat", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, http.StatusOK, map[string]string{"response": "AI says: You asked '" + req["message"] + "'"})
	})
	return mux
}

// signedIn starts a fake backend and a session for alice.
func signedIn(t *testing.T) *fakeBackend {
	t.Helper()
	backend := &fakeBackend{}
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	sessionFile := filepath.Join(dir, "session.json")
	require.NoError(t, panel.NewFileStore(sessionFile).Set(panel.SessionKey, "alice"))

	t.Setenv("MEDINFO_API_URL", srv.URL)
	t.Setenv("MEDINFO_SESSION_FILE", sessionFile)
	t.Setenv("MEDINFO_LOG_FILE", filepath.Join(dir, "cli.log"))
	t.Setenv("MEDINFO_LAT", "")
	t.Setenv("MEDINFO_LNG", "")
	return backend
}

func TestSearchCommand(t *testing.T) {
	signedIn(t)

	out, err := execute(t, "search", "para")
	require.NoError(t, err)
	assert.Equal(t, "  [1] Paracetamol (Acetaminophen)  BrandA  ₹10\n", out)

	out, err = execute(t, "search", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No medicines found.\n", out)

	_, err = execute(t, "search", "boom")
	require.Error(t, err)
	assert.Equal(t, "search failed: db down", err.Error())
}

func TestSaveAndSavedCommands(t *testing.T) {
	signedIn(t)

	out, err := execute(t, "saved")
	require.NoError(t, err)
	assert.Equal(t, "No medicines saved yet.\n", out)

	out, err = execute(t, "save", "1")
	require.NoError(t, err)
	assert.Equal(t, "Saved. Your list:\n  [1] Paracetamol (Acetaminophen)  BrandA  ₹10\n", out)

	out, err = execute(t, "saved")
	require.NoError(t, err)
	assert.Equal(t, "  [1] Paracetamol (Acetaminophen)  BrandA  ₹10\n", out)

	_, err = execute(t, "save", "7")
	require.Error(t, err)
	assert.Equal(t, "save failed: Medicine not found", err.Error())
}

func TestSaveRejectsBadID(t *testing.T) {
	signedIn(t)

	for _, arg := range []string{"abc", "-1", "99999999999999999999999"} {
		_, err := execute(t, "save", "--", arg)
		require.Error(t, err, arg)
		assert.Contains(t, err.Error(), "invalid medicine id", arg)
	}
}

func TestGenericCommand(t *testing.T) {
	signedIn(t)

	out, err := execute(t, "generic", "Paracetamol")
	require.NoError(t, err)
	assert.Equal(t, "Generic Name: Acetaminophen\nBrands & Prices:\n"+
		"  Paracetamol  BrandA  ₹10\n"+
		"  Crocin  GSK  ₹22.5\n", out)

	out, err = execute(t, "generic", "Paracetmol")
	require.NoError(t, err)
	assert.Equal(t, "Medicine not found\nDid you mean Paracetamol?\n", out)
}

func TestEssentialsCommand(t *testing.T) {
	signedIn(t)

	out, err := execute(t, "essentials")
	require.NoError(t, err)
	assert.Equal(t, "pain\nfever\n", out)

	out, err = execute(t, "essentials", "pain")
	require.NoError(t, err)
	assert.Equal(t, "Pain Medicines:\n  [1] Paracetamol (Acetaminophen)  BrandA  ₹10\n", out)

	out, err = execute(t, "essentials", "cold")
	require.NoError(t, err)
	assert.Equal(t, "Cold Medicines:\nNo medicines found.\n", out)
}

func TestKendraCommandFallsBackToNewDelhi(t *testing.T) {
	backend := signedIn(t)

	out, err := execute(t, "kendra")
	require.NoError(t, err)
	assert.Equal(t, "Near New Delhi (location unavailable) (28.6139, 77.2090):\n"+
		"  Kendra CP  (28.6315, 77.2167)  2.13 km\n", out)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, 1, backend.nearbyCalls)
	assert.Equal(t, "lat=28.6139&lng=77.209", backend.nearbyQuery)
}

func TestKendraCommandUsesGivenLocation(t *testing.T) {
	backend := signedIn(t)

	out, err := execute(t, "kendra", "--lat", "19.076", "--lng", "72.8777")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Near your location (19.0760, 72.8777):\n"), out)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, 1, backend.nearbyCalls)
	assert.Equal(t, "lat=19.076&lng=72.8777", backend.nearbyQuery)
}

func TestChatCommand(t *testing.T) {
	signedIn(t)

	out, err := execute(t, "chat", "what", "is", "paracetamol")
	require.NoError(t, err)
	assert.Equal(t, "user: what is paracetamol\nassistant: AI says: You asked 'what is paracetamol'\n", out)
}

func TestPricesCommand(t *testing.T) {
	signedIn(t)

	out, err := execute(t, "prices", "Crocin")
	require.NoError(t, err)
	assert.Equal(t, "Prices for Crocin:\n  1mg  Rs.18  https://1mg.com/crocin\n", out)

	out, err = execute(t, "prices", "Unobtainium")
	require.NoError(t, err)
	assert.Equal(t, "No online prices found for Unobtainium.\n", out)
}

func TestReportCommand(t *testing.T) {
	signedIn(t)

	out, err := execute(t, "report", "crocin")
	require.NoError(t, err)
	assert.Equal(t, "Crocin\nComposition: Paracetamol 500mg\nGeneric: Paracetamol\n"+
		"\nAn analgesic.\n"+
		"\nUses:\n  - Fever\n  - Headache\n"+
		"\nWarnings:\n  - Liver disease\n"+
		"\nAlternatives:\n  - Dolo 650 (Micro Labs)\n", out)

	_, err = execute(t, "report", "aspirin")
	require.Error(t, err)
	assert.Equal(t, "report failed: Web search is not configured on the server.", err.Error())
}

func TestToolCommandsNeedSession(t *testing.T) {
	signedIn(t)
	t.Setenv("MEDINFO_SESSION_FILE", filepath.Join(t.TempDir(), "none.json"))

	_, err := execute(t, "saved")
	assert.ErrorIs(t, err, errNotSignedIn)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "10", formatPrice(10))
	assert.Equal(t, "22.5", formatPrice(22.5))
	assert.Equal(t, "Pain", capitalize("pain"))
	assert.Equal(t, "", capitalize(""))
}
