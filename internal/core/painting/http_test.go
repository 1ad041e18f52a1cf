// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package painting_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ekphrasis/internal/core/painting"
	"github.com/taibuivan/ekphrasis/internal/core/pairing"
)

func newRouter(service *painting.Service) http.Handler {
	router := chi.NewRouter()
	painting.NewHandler(service).RegisterRoutes(router)
	return router
}

func serve(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestHandler_Index_Defaults(t *testing.T) {
	router := newRouter(newService(seedPaintings(3), nil, nil))

	recorder, body := serve(t, router, "/index")
	assert.Equal(t, http.StatusOK, recorder.Code)

	items, ok := body["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 3)

	first := items[0].(map[string]any)
	assert.Contains(t, first, "image_url")
	assert.Nil(t, first["image_url"])

	meta := body["pagination"].(map[string]any)
	assert.EqualValues(t, 1, meta["page"])
	assert.EqualValues(t, 2000, meta["limit"])
	assert.EqualValues(t, 3, meta["total"])
	assert.EqualValues(t, 1, meta["total_pages"])
	assert.Equal(t, false, meta["has_next"])
	assert.Equal(t, false, meta["has_prev"])
}

/*
TestHandler_Index_BadQuery covers malformed and out-of-range parameters.
*/
func TestHandler_Index_BadQuery(t *testing.T) {
	router := newRouter(newService(seedPaintings(3), nil, nil))

	for _, target := range []string{
		"/index?limit=0",
		"/index?limit=2001",
		"/index?page=0",
		"/index?page=abc",
		"/index?limit=1.5",
	} {
		t.Run(target, func(t *testing.T) {
			recorder, body := serve(t, router, target)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Equal(t, "VALIDATION_ERROR", body["code"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestHandler_Index_StoreFailure(t *testing.T) {
	store := seedPaintings(1)
	store.err = errStoreDown
	router := newRouter(newService(store, nil, nil))

	recorder, body := serve(t, router, "/index")
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, "STORE_UNAVAILABLE", body["code"])
	assert.NotContains(t, body["message"], "connection refused")
}

func TestHandler_Painting(t *testing.T) {
	pairings := &fakePairings{byPainting: map[int64][]*pairing.Detail{
		1: {{ID: 4, Basis: pairing.BasisObject, Poem: pairing.PoemDetail{ID: 8, Name: "3_PF"}}},
	}}
	router := newRouter(newService(seedPaintings(1), pairings, &fakeAssets{}))

	recorder, body := serve(t, router, "/painting/1")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body, "image_url")

	paintingBody := body["painting"].(map[string]any)
	assert.Equal(t, "painting_1", paintingBody["name"])

	pairingsBody := paintingBody["pairings"].([]any)
	require.Len(t, pairingsBody, 1)
	poem := pairingsBody[0].(map[string]any)["poem"].(map[string]any)
	assert.Equal(t, "3_PF", poem["name"])
	assert.NotContains(t, poem, "content")
}

func TestHandler_Painting_NotFound(t *testing.T) {
	router := newRouter(newService(seedPaintings(2), nil, nil))

	for _, target := range []string{"/painting/0", "/painting/3", "/painting/abc"} {
		t.Run(target, func(t *testing.T) {
			recorder, body := serve(t, router, target)
			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.Equal(t, "NOT_FOUND", body["code"])
		})
	}
}

func TestHandler_Painting_WithoutPairings(t *testing.T) {
	router := newRouter(newService(seedPaintings(1), nil, nil))

	_, body := serve(t, router, "/painting/1")
	assert.NotContains(t, body["painting"], "pairings")
}
