package ports

import websocketdto "trek-tango/internal/trek-service/core/domain/websocket_dto"

type INotifyWebsocket interface {
	WriteToUser(username string, msg websocketdto.Event)
}
