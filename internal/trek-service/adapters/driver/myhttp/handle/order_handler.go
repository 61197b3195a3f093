package handle

import (
	"encoding/json"
	"net/http"

	"trek-tango/internal/mylogger"
	"trek-tango/internal/trek-service/core/domain/dto"
	model "trek-tango/internal/trek-service/core/domain/model"
	"trek-tango/internal/trek-service/core/myerrors"
	"trek-tango/internal/trek-service/core/ports"
)

type OrderHandler struct {
	sequencer ports.ISequencerService
	log       mylogger.Logger
}

func NewOrderHandler(sequencer ports.ISequencerService, log mylogger.Logger) *OrderHandler {
	return &OrderHandler{
		sequencer: sequencer,
		log:       log,
	}
}

func (oh *OrderHandler) OrderFromPoint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.OrderFromPointRequestDto{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if req.OriginLat == nil || req.OriginLng == nil {
			JsonError(w, http.StatusBadRequest, myerrors.ErrFieldIsEmpty)
			return
		}

		origin := model.Coordinates{
			Latitude:  *req.OriginLat,
			Longitude: *req.OriginLng,
		}

		ordered, err := oh.sequencer.OrderFromPoint(r.Context(), origin, req.DestinationList)
		if err != nil {
			JsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.OrderResponseDto{DestinationList: ordered})
	}
}

func (oh *OrderHandler) OrderFromAnchor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.OrderFromAnchorRequestDto{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		ordered, err := oh.sequencer.OrderFromAnchor(r.Context(), req.DestinationList)
		if err != nil {
			JsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.OrderResponseDto{DestinationList: ordered})
	}
}
