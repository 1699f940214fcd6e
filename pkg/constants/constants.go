package constants

// CHANNEL_SIZE websocket 客户端发送通道的缓冲大小
const CHANNEL_SIZE = 1024
