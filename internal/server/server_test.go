package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/potioncraft/internal/catalog"
	"github.com/osse101/potioncraft/internal/crafting"
	"github.com/osse101/potioncraft/internal/database/memory"
	"github.com/osse101/potioncraft/internal/domain"
	"github.com/osse101/potioncraft/internal/event"
)

const testSeed = `
actors:
  - id: hero
    name: Hero
    items:
      - { id: herb, name: Red Herb, type: loot, quantity: 3 }
      - { id: water, name: Water, type: loot, quantity: 1 }
`

func newTestServer(t *testing.T, opts Options) (*Server, *memory.ItemStore) {
	t.Helper()

	store := memory.NewItemStore()
	require.NoError(t, store.LoadSeed([]byte(testSeed)))

	svc := crafting.NewService(catalog.MustDefault(), store, nil, event.NewMemoryBus(), crafting.Options{})
	return NewServer(opts, nil, svc, store), store
}

func do(s *Server, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_CraftFlow(t *testing.T) {
	s, store := newTestServer(t, Options{ServiceName: "potioncraft"})

	rec := do(s, http.MethodGet, "/api/v1/actors/hero/craftable?recipe=Health+Potion+%28Common%29", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"craftable"`)

	rec = do(s, http.MethodPost, "/api/v1/actors/hero/craft", `{"recipe":"Health Potion (Common)"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result crafting.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, crafting.OutcomeSuccess, result.Outcome)
	assert.Equal(t, "Successfully crafted Health Potion (Common)!", result.Message)

	items, err := store.ListItems(t.Context(), "hero")
	require.NoError(t, err)
	byName := map[string]domain.Item{}
	for _, it := range items {
		byName[it.Name] = it
	}
	assert.Equal(t, 1, *byName["Red Herb"].Quantity)
	assert.Equal(t, 0, *byName["Water"].Quantity)
	assert.Equal(t, 1, *byName["Health Potion (Common)"].Quantity)

	// Water is gone now
	rec = do(s, http.MethodPost, "/api/v1/actors/hero/craft", `{"recipe":"Health Potion (Common)"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "You don't have the necessary ingredients for Health Potion (Common).")

	rec = do(s, http.MethodGet, "/api/v1/actors/hero/last-craft", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"missing_ingredients"`)
}

func TestServer_RecipeNotFound(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	rec := do(s, http.MethodPost, "/api/v1/actors/hero/craft", `{"recipe":"Dragon Tears"}`, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error: Recipe not found.")
}

func TestServer_Recipes(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	rec := do(s, http.MethodGet, "/api/v1/recipes/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"grade":"Common"`)

	rec = do(s, http.MethodGet, "/api/v1/recipes/?grade=legendary", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"grade":"Legendary"`)

	rec = do(s, http.MethodGet, "/api/v1/recipes/Health%20Potion%20(Common)", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownActorInventory(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	rec := do(s, http.MethodGet, "/api/v1/actors/nobody/inventory", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_APIKey(t *testing.T) {
	s, _ := newTestServer(t, Options{APIKey: "k"})

	assert.Equal(t, http.StatusUnauthorized, do(s, http.MethodGet, "/api/v1/recipes/", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/v1/recipes/", "", map[string]string{HeaderAPIKey: "k"}).Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/healthz", "", nil).Code)
}

func TestServer_BodyLimit(t *testing.T) {
	s, _ := newTestServer(t, Options{MaxBodyBytes: 32})

	body := `{"recipe":"` + strings.Repeat("x", 64) + `"}`
	rec := do(s, http.MethodPost, "/api/v1/actors/hero/craft", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_MetricsAndReadiness(t *testing.T) {
	s, _ := newTestServer(t, Options{})

	do(s, http.MethodPost, "/api/v1/actors/hero/craft", `{"recipe":"Dragon Tears"}`, nil)

	rec := do(s, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "potioncraft_craft_attempts_total")

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/readyz", "", nil).Code)
}

func TestServer_SwaggerDocIsPublic(t *testing.T) {
	s, _ := newTestServer(t, Options{ServiceName: "potioncraft", APIKey: "s3cret"})

	rec := do(s, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc["basePath"])
	assert.Contains(t, doc["paths"], "/actors/{actorID}/craft")
}
