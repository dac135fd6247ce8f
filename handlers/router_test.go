package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapleleafu/wardrush/wardrush-backend/game"
	"github.com/mapleleafu/wardrush/wardrush-backend/models"
)

func apiGet(t *testing.T, router http.Handler, path string) (int, models.ApiResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestListRoomsAPI(t *testing.T) {
	reg := game.NewRegistry(game.DefaultConfig())
	router := NewRouter(reg)
	code, _, _ := reg.Create(&fakeConn{})

	status, resp := apiGet(t, router, "/api/rooms")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
	rooms, ok := resp.Data.([]any)
	require.True(t, ok)
	require.Len(t, rooms, 1)
	room, ok := rooms[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, code, room["code"])
	assert.Equal(t, float64(1), room["players"])
}

func TestGetRoomAPI(t *testing.T) {
	reg := game.NewRegistry(game.DefaultConfig())
	router := NewRouter(reg)
	code, _, _ := reg.Create(&fakeConn{})

	status, resp := apiGet(t, router, "/api/rooms/"+code)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, resp.Success)
}

func TestGetRoomUnknownCode(t *testing.T) {
	reg := game.NewRegistry(game.DefaultConfig())
	router := NewRouter(reg)

	status, resp := apiGet(t, router, "/api/rooms/ZZZZ")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, resp.Success)
}

func TestGetRoomMalformedCode(t *testing.T) {
	reg := game.NewRegistry(game.DefaultConfig())
	router := NewRouter(reg)

	status, resp := apiGet(t, router, "/api/rooms/TOOLONG")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
}
