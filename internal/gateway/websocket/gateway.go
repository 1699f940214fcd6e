// Package websocket 提供实体变更事件的实时推送网关
// 前端建立 ws 连接后，网关把事件总线上的 ADD/UPDATE/DELETE 事件
// 以 JSON 帧的形式广播给所有在线客户端，驱动界面刷新
package websocket

import (
	"encoding/json"
	"net/http"
	"sync"

	"kama_social_server/internal/event"
	"kama_social_server/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	// 检查连接的Origin头
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Frame 推送给前端的事件帧
type Frame struct {
	Entity string `json:"entity"` // user / friendship / request / message
	Event  any    `json:"event"`
}

// Client 一条 websocket 连接
type Client struct {
	Conn *websocket.Conn
	Uuid string
	Send chan []byte
}

// Write 从 send 通道读取消息发送给 websocket
func (c *Client) Write() {
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			zap.L().Error(err.Error())
			return
		}
	}
}

// Read 读取并丢弃前端消息，连接断开时触发注销
// 事件推送是单向的，前端发来的帧没有业务含义
func (c *Client) Read(g *Gateway) {
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			g.Unregister(c.Uuid)
			return
		}
	}
}

// Gateway 事件推送网关，持有全部在线客户端
type Gateway struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewGateway 创建网关实例
func NewGateway() *Gateway {
	return &Gateway{
		clients: make(map[string]*Client),
	}
}

// feed 把某一类实体事件适配为总线观察者
type feed[E any] struct {
	gateway *Gateway
	entity  string
}

func (f *feed[E]) Notify(ev E) {
	f.gateway.broadcast(f.entity, ev)
}

// Attach 把网关订阅到事件总线的全部注册表上
func (g *Gateway) Attach(bus *event.Bus) {
	bus.User.Subscribe(&feed[event.UserEvent]{gateway: g, entity: "user"})
	bus.Friendship.Subscribe(&feed[event.FriendshipEvent]{gateway: g, entity: "friendship"})
	bus.Request.Subscribe(&feed[event.RequestEvent]{gateway: g, entity: "request"})
	bus.Message.Subscribe(&feed[event.MessageEvent]{gateway: g, entity: "message"})
}

// HandleConnection 升级 HTTP 连接为 websocket 并注册客户端
func (g *Gateway) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error(err.Error())
		return
	}
	client := &Client{
		Conn: conn,
		Uuid: uuid.NewString(),
		Send: make(chan []byte, constants.CHANNEL_SIZE),
	}

	g.mu.Lock()
	g.clients[client.Uuid] = client
	g.mu.Unlock()

	go client.Write()
	go client.Read(g)
	zap.L().Info("ws连接成功", zap.String("uuid", client.Uuid))
}

// Unregister 注销客户端并关闭其发送通道
func (g *Gateway) Unregister(uuid string) {
	g.mu.Lock()
	client, ok := g.clients[uuid]
	if ok {
		delete(g.clients, uuid)
	}
	g.mu.Unlock()

	if !ok {
		return
	}
	close(client.Send)
	if err := client.Conn.Close(); err != nil {
		zap.L().Error(err.Error())
	}
	zap.L().Info("ws连接关闭", zap.String("uuid", uuid))
}

// Close 关闭全部在线连接
func (g *Gateway) Close() {
	g.mu.Lock()
	clients := g.clients
	g.clients = make(map[string]*Client)
	g.mu.Unlock()

	for _, client := range clients {
		close(client.Send)
		if err := client.Conn.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}
}

// broadcast 把事件序列化为帧并投递给全部在线客户端
// 某个客户端的发送通道满时跳过该客户端，不阻塞事件发布方
func (g *Gateway) broadcast(entity string, ev any) {
	data, err := json.Marshal(Frame{Entity: entity, Event: ev})
	if err != nil {
		zap.L().Error(err.Error())
		return
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, client := range g.clients {
		select {
		case client.Send <- data:
		default:
			zap.L().Warn("ws发送通道已满，丢弃事件", zap.String("uuid", client.Uuid))
		}
	}
}
