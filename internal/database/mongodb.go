package database

import (
	"context"
	"sync"

	"eventdeck/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"
)

// DialFunc 建立底層 MongoDB 連線，測試時可替換成假實作
type DialFunc func(ctx context.Context, uri string) (*mongo.Client, error)

func defaultDial(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// ConnectionManager 快取單一 MongoDB 連線。
// 首次 Acquire 建立連線，同時進來的呼叫共用同一次 in-flight 嘗試；
// 成功後整個 process 生命週期都重用同一個 handle，
// 失敗則把錯誤回傳給所有等待者，下一個呼叫者重新嘗試。
type ConnectionManager struct {
	uri      string
	database string
	dial     DialFunc

	group  singleflight.Group
	mu     sync.RWMutex
	client *mongo.Client
}

func NewConnectionManager(cfg *config.MongoConfig) *ConnectionManager {
	return &ConnectionManager{
		uri:      cfg.URI,
		database: cfg.Database,
		dial:     defaultDial,
	}
}

// NewConnectionManagerWithDial 注入自訂 DialFunc，供測試計算連線次數
func NewConnectionManagerWithDial(uri, database string, dial DialFunc) *ConnectionManager {
	return &ConnectionManager{
		uri:      uri,
		database: database,
		dial:     dial,
	}
}

func (m *ConnectionManager) Acquire(ctx context.Context) (*mongo.Database, error) {
	m.mu.RLock()
	client := m.client
	m.mu.RUnlock()
	if client != nil {
		return client.Database(m.database), nil
	}

	v, err, _ := m.group.Do("connect", func() (interface{}, error) {
		// 排隊期間可能已有別的呼叫完成連線
		m.mu.RLock()
		cached := m.client
		m.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		c, err := m.dial(ctx, m.uri)
		if err != nil {
			// 失敗不留狀態，singleflight 結束後下一個呼叫者會重新 dial
			return nil, err
		}

		m.mu.Lock()
		m.client = c
		m.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mongo.Client).Database(m.database), nil
}

func (m *ConnectionManager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}
