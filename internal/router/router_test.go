package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tokenadapter "pawcare-service/internal/adapters/auth/token"
	apiclient "pawcare-service/internal/client"
	"pawcare-service/internal/router"
)

func TestHTTP_EndToEnd_PetLifecycle(t *testing.T) {
	ts := httptest.NewServer(newTestRouter())
	defer ts.Close()

	ownerID := "owner-1"
	strangerID := "stranger-1"

	// 1) Owner registra a su gata
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":       "Whiskers",
		"species":    "cat",
		"breed":      "British Shorthair",
		"gender":     "female",
		"birth_date": "2023-03-12",
	})

	// 2) Otro usuario no la ve
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, strangerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for stranger, got %d", st)
		}
	}

	// 3) Sin mediciones: latest 404, delta null
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/weights/latest", ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 latest with no records, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/weights/delta", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delta, got %d body=%s", st, string(body))
		}
		var resp struct {
			Delta *float64 `json:"delta"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Delta != nil {
			t.Fatalf("expected delta null with no records, got %v", *resp.Delta)
		}
	}

	// 4) Dos mediciones, insertadas fuera de orden cronológico
	addWeight(t, ts.URL, ownerID, petID, 4.4, "2026-08-10T00:00:00Z")
	addWeight(t, ts.URL, ownerID, petID, 4.2, "2026-08-20T00:00:00Z")

	// 5) Historial descendente y delta = última − anterior
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/weights", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list weights, got %d", st)
		}
		var items []struct {
			Weight float64 `json:"weight"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 2 || items[0].Weight != 4.2 || items[1].Weight != 4.4 {
			t.Fatalf("expected [4.2 4.4] (desc by date), got %+v", items)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/weights/delta", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delta, got %d", st)
		}
		var resp struct {
			Delta *float64 `json:"delta"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Delta == nil || math.Abs(*resp.Delta-(-0.2)) > 1e-9 {
			t.Fatalf("expected delta -0.2, got %+v", resp.Delta)
		}
	}

	// 6) Vacunación con recordatorio => next-vaccination la devuelve
	reminder := time.Now().UTC().AddDate(0, 6, 0).Truncate(time.Second)
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/records", ownerID, map[string]any{
			"type":          "vaccination",
			"title":         "Rabies vaccine",
			"occurred_at":   time.Now().UTC().Format(time.RFC3339),
			"reminder_date": reminder.Format(time.RFC3339),
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create record, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/records/next-vaccination", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 next-vaccination, got %d", st)
		}
		var resp struct {
			Due *time.Time `json:"due"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Due == nil || !resp.Due.Equal(reminder) {
			t.Fatalf("expected due %v, got %v", reminder, resp.Due)
		}
	}

	// 7) Resumen semanal cuenta el registro recién creado
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/summary?range=weekly", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}
		var resp struct {
			TotalRecords int `json:"total_records"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.TotalRecords != 1 {
			t.Fatalf("expected 1 record in weekly summary, got %d", resp.TotalRecords)
		}
	}

	// 8) Borrar la mascota cascadea: records y weights desaparecen
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/pets/"+petID, ownerID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete pet, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/weights", ownerID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 weights after cascade, got %d", st)
		}
	}
}

func TestHTTP_Illnesses_CatalogAndCustom(t *testing.T) {
	ts := httptest.NewServer(newTestRouter())
	defer ts.Close()

	userID := "user-1"

	// catálogo: 6 predefinidas
	var catalogLen int
	{
		st, body := doReq(t, ts.URL, "GET", "/illnesses", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list illnesses, got %d", st)
		}
		var items []struct {
			ID           string `json:"id"`
			IsPredefined bool   `json:"is_predefined"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 6 {
			t.Fatalf("expected 6 predefined illnesses, got %d", len(items))
		}
		catalogLen = len(items)
	}

	// sin auth => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/illnesses", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without auth, got %d", st)
		}
	}

	// alta de personalizada
	var customID string
	{
		st, body := doReq(t, ts.URL, "POST", "/illnesses", userID, map[string]any{
			"name":     "Hairballs",
			"category": "digestive",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create illness, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &resp)
		customID = resp.ID
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/illnesses", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var items []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != catalogLen+1 || items[len(items)-1].ID != customID {
			t.Fatalf("expected custom illness after catalog, got %d items", len(items))
		}
	}

	// catálogo inmutable
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/illnesses/1", userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting predefined, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/illnesses/"+customID, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 deleting custom, got %d", st)
		}
	}
}

func TestHTTP_Auth_RegisterLoginAndProfile(t *testing.T) {
	issuer := tokenadapter.New("test-secret", "pawcare-test")
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: issuer,
		TokenIssuer:  issuer,
	}))
	defer ts.Close()

	// registro emite tokens
	var token string
	{
		st, body := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"email":            "ana@example.com",
			"password":         "secret1",
			"confirm_password": "secret1",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
		}
		var resp struct {
			AccessToken string `json:"access_token"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.AccessToken == "" {
			t.Fatalf("missing access token, body=%s", string(body))
		}
		token = resp.AccessToken
	}

	// OTP: envío acepta, código corto rechaza
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/otp/send", "", map[string]any{"email": "ana@example.com"})
		if st != http.StatusAccepted {
			t.Fatalf("expected 202 otp send, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/otp/login", "", map[string]any{
			"email": "ana@example.com",
			"code":  "123",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 short otp, got %d", st)
		}
	}

	// /me con Bearer token
	{
		st, body := doBearerReq(t, ts.URL, "GET", "/me", token, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 /me, got %d body=%s", st, string(body))
		}
		var resp struct {
			Email string `json:"email"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Email != "ana@example.com" {
			t.Fatalf("unexpected profile: %s", string(body))
		}
	}

	// PATCH /me cambia idioma
	{
		st, body := doBearerReq(t, ts.URL, "PATCH", "/me", token, map[string]any{
			"language": "zh-Hans",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch /me, got %d body=%s", st, string(body))
		}
		var resp struct {
			Language string `json:"language"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Language != "zh-Hans" {
			t.Fatalf("expected language zh-Hans, got %s", resp.Language)
		}
	}
}

func TestHTTP_TypedClient(t *testing.T) {
	ts := httptest.NewServer(newTestRouter())
	defer ts.Close()

	cl, err := apiclient.New(ts.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("client.New: %v", err)
	}
	cl.DebugUserID = "owner-1"
	ctx := context.Background()

	pet, err := cl.CreatePet(ctx, map[string]any{
		"name":       "Mochi",
		"species":    "cat",
		"birth_date": "2024-01-15",
	})
	if err != nil {
		t.Fatalf("CreatePet: %v", err)
	}
	if pet.ID == "" || pet.Species != "cat" {
		t.Fatalf("unexpected pet: %+v", pet)
	}

	if _, err := cl.AddWeight(ctx, pet.ID, 3.8, time.Now().UTC(), ""); err != nil {
		t.Fatalf("AddWeight: %v", err)
	}

	latest, err := cl.LatestWeight(ctx, pet.ID)
	if err != nil {
		t.Fatalf("LatestWeight: %v", err)
	}
	if latest.Weight != 3.8 {
		t.Fatalf("expected latest 3.8, got %v", latest.Weight)
	}

	delta, err := cl.WeightDelta(ctx, pet.ID)
	if err != nil {
		t.Fatalf("WeightDelta: %v", err)
	}
	if delta.Delta != nil {
		t.Fatalf("expected nil delta with one record, got %v", *delta.Delta)
	}

	if err := cl.DeletePet(ctx, pet.ID); err != nil {
		t.Fatalf("DeletePet: %v", err)
	}
	pets, err := cl.ListPets(ctx)
	if err != nil {
		t.Fatalf("ListPets: %v", err)
	}
	if len(pets) != 0 {
		t.Fatalf("expected no pets after delete, got %d", len(pets))
	}
}

func newTestRouter() http.Handler {
	return router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: X-Debug-User-ID
		TokenIssuer:  tokenadapter.New("test-secret", "pawcare-test"),
	})
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func addWeight(t *testing.T, baseURL, userID, petID string, kg float64, date string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets/"+petID+"/weights", userID, map[string]any{
		"weight": kg,
		"date":   date,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 add weight, got %d body=%s", st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()
	return doHTTP(t, baseURL, method, path, map[string]string{"X-Debug-User-ID": debugUserID}, body)
}

func doBearerReq(t *testing.T, baseURL, method, path, token string, body any) (int, []byte) {
	t.Helper()
	return doHTTP(t, baseURL, method, path, map[string]string{"Authorization": "Bearer " + token}, body)
}

func doHTTP(t *testing.T, baseURL, method, path string, headers map[string]string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
