//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_HealthEndpoints(t *testing.T) {
	ts := setupTestServer(t)
	client := ts.newBrowser(t)

	for _, path := range []string{"/live", "/ready", "/health"} {
		status, body := do(t, client, http.MethodGet, ts.URL+path, nil)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, "ok", body["status"], path)
	}
}

func TestE2E_MealLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	browser := ts.newBrowser(t)

	id := createMeal(t, ts, browser, map[string]any{
		"name":        "Oatmeal",
		"description": "with berries",
		"inside_diet": true,
	})

	meals := listMeals(t, ts, browser)
	require.Len(t, meals, 1)

	status, got := do(t, browser, http.MethodGet, ts.URL+"/meals/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	meal := got
	assert.Equal(t, "Oatmeal", meal["name"])
	assert.Equal(t, "with berries", meal["description"])
	assert.Equal(t, true, meal["inside_diet"])
	assert.NotEmpty(t, meal["date"])
	assert.NotContains(t, meal, "session_id")

	status, _ = do(t, browser, http.MethodPut, ts.URL+"/meals/"+id, map[string]any{
		"name":        "Porridge",
		"description": nil,
		"inside_diet": false,
	})
	require.Equal(t, http.StatusOK, status)

	_, got = do(t, browser, http.MethodGet, ts.URL+"/meals/"+id, nil)
	meal = got
	assert.Equal(t, "Porridge", meal["name"])
	assert.Nil(t, meal["description"])
	assert.Equal(t, false, meal["inside_diet"])

	status, body := do(t, browser, http.MethodDelete, ts.URL+"/meals/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["deleted"])

	status, body = do(t, browser, http.MethodDelete, ts.URL+"/meals/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["deleted"])

	status, _ = do(t, browser, http.MethodGet, ts.URL+"/meals/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestE2E_SessionsAreIsolated(t *testing.T) {
	ts := setupTestServer(t)
	alice := ts.newBrowser(t)
	bob := ts.newBrowser(t)

	aliceMeal := createMeal(t, ts, alice, map[string]any{"name": "Toast", "inside_diet": false})
	createMeal(t, ts, bob, map[string]any{"name": "Salad", "inside_diet": true})

	require.Len(t, listMeals(t, ts, alice), 1)
	require.Len(t, listMeals(t, ts, bob), 1)

	status, _ := do(t, bob, http.MethodGet, ts.URL+"/meals/"+aliceMeal, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, bob, http.MethodPut, ts.URL+"/meals/"+aliceMeal, map[string]any{
		"name": "Hijacked", "description": nil, "inside_diet": true,
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, body := do(t, bob, http.MethodDelete, ts.URL+"/meals/"+aliceMeal, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["deleted"])

	_, got := do(t, alice, http.MethodGet, ts.URL+"/meals/"+aliceMeal, nil)
	assert.Equal(t, "Toast", got["name"])
}

func TestE2E_NoCookieIsUnauthorized(t *testing.T) {
	ts := setupTestServer(t)
	stranger := ts.newBrowser(t)

	status, body := do(t, stranger, http.MethodGet, ts.URL+"/meals", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthorized", body["error"])
}

func TestE2E_InvalidCreateDoesNotStartSession(t *testing.T) {
	ts := setupTestServer(t)
	browser := ts.newBrowser(t)

	status, body := do(t, browser, http.MethodPost, ts.URL+"/meals", map[string]any{"name": "   "})
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "validation failed", body["error"])

	status, _ = do(t, browser, http.MethodGet, ts.URL+"/meals", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
