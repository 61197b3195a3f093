package dto

import model "trek-tango/internal/trek-service/core/domain/model"

type CreateSessionRequestDto struct {
	UserId                   *string             `json:"userId"`
	Username                 *string             `json:"username"`
	ListOfPlaces             []model.Destination `json:"listOfPlaces"`
	Detected                 *bool               `json:"detected"`
	ConfirmedStarterLocation *model.Coordinates  `json:"confirmedStarterLocation"`
}

type CreateSessionResponseDto struct {
	SessionId string `json:"sessionId"`
}

type MarkCompletedRequestDto struct {
	SessionId *string `json:"sessionId"`
	PlaceId   *string `json:"placeId"`
}

type CompleteSessionRequestDto struct {
	SessionId *string `json:"sessionId"`
}

type AckResponseDto struct {
	Message string `json:"message"`
}
