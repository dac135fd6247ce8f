package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mapleleafu/wardrush/wardrush-backend/game"
	"github.com/mapleleafu/wardrush/wardrush-backend/models"
	"github.com/mapleleafu/wardrush/wardrush-backend/responses"
	"github.com/mapleleafu/wardrush/wardrush-backend/utils"
)

func NewRouter(registry *game.Registry) *mux.Router {
	h := NewHandler(registry)
	r := mux.NewRouter()

	r.HandleFunc("/ws", h.WsHandler)
	r.HandleFunc("/api/rooms", h.ListRooms).Methods("GET")
	r.HandleFunc("/api/rooms/{code}", h.GetRoom).Methods("GET")
	return r
}

// ListRooms reports live rooms with their occupancy.
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	utils.HandleSuccess(w, models.SuccessResponse(h.registry.ListRooms()))
}

// GetRoom reports a single room's occupancy: 400 for malformed codes,
// 404 for unknown ones.
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := strings.ToUpper(vars["code"])
	if len(code) != game.CodeLength {
		utils.HandleError(w, responses.BadRequestError{Msg: "Malformed room code."})
		return
	}
	room := h.registry.Get(code)
	if room == nil {
		utils.HandleError(w, responses.NotFoundError{Msg: "Room not found."})
		return
	}
	utils.HandleSuccess(w, models.SuccessResponse(game.RoomInfo{Code: room.Code, Players: room.PlayerCount()}))
}
