package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/incidentwatch/emergency_monitoring_system/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Дашборд открывается с произвольных хостов, проверка Origin отключена
	CheckOrigin: func(r *http.Request) bool { return true },
}

// DashboardWS апгрейдит соединение и подписывает клиента на события тревог
func DashboardWS(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade сам пишет ответ клиенту при ошибке
			return
		}
		hub.RegisterClient(conn)
	}
}
