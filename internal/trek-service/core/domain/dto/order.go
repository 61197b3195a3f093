package dto

import model "trek-tango/internal/trek-service/core/domain/model"

// API transfer data for the destination-ordering endpoints. Pointer
// fields so validation can tell "missing" from zero values.

type OrderFromPointRequestDto struct {
	OriginLat       *float64            `json:"originLat"`
	OriginLng       *float64            `json:"originLng"`
	DestinationList []model.Destination `json:"destinationList"`
}

type OrderFromAnchorRequestDto struct {
	// first element is the user-chosen anchor
	DestinationList []model.Destination `json:"destinationList"`
}

type OrderResponseDto struct {
	DestinationList []model.Destination `json:"destinationList"`
}
