package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- ScyllaDB configuration ---
type ScyllaKeyspaceConfig struct {
	Hosts       []string
	Keyspace    string
	Username    string
	Password    string
	Timeout     time.Duration
	NumConns    int
	Consistency gocql.Consistency
}

type ScyllaManager struct {
	sessions map[string]*gocql.Session // keyspace → session
	configs  map[string]ScyllaKeyspaceConfig
	mu       sync.Mutex
}

// DB bundles every backing store the service talks to. It is built once in
// main and handed to the store layer; nothing in this package is a global.
type DB struct {
	Scylla  *ScyllaManager
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	MinIO   *minio.Client
}

// Connect initialises ScyllaDB (multi-keyspace), Redis, Elasticsearch and MinIO.
func Connect() (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := &DB{}

	// 1. ScyllaDB (multi-keyspace)
	scylla := &ScyllaManager{
		sessions: make(map[string]*gocql.Session),
		configs:  loadScyllaConfigs(),
	}
	for keyspace := range scylla.configs {
		if _, err := scylla.GetSession(keyspace); err != nil {
			return nil, fmt.Errorf("scylla keyspace %s init failed: %v", keyspace, err)
		}
	}
	db.Scylla = scylla

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %v", err)
	}
	db.Redis = rdb
	log.Println("✅ Connected to Redis")

	// 3. Elasticsearch is optional; search falls back to a Scylla scan without it.
	if url := os.Getenv("ELASTIC_URL"); url != "" {
		es, err := connectElastic(url)
		if err != nil {
			log.Println("⚠️ Elasticsearch unavailable:", err)
		} else {
			db.Elastic = es
			log.Println("✅ Connected to Elasticsearch")
		}
	}

	// 4. MinIO is optional; product image uploads are refused without it.
	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		mc, err := connectMinIO(ctx, endpoint)
		if err != nil {
			log.Println("⚠️ MinIO unavailable:", err)
		} else {
			db.MinIO = mc
			log.Println("✅ Connected to MinIO:", endpoint)
		}
	}

	log.Println("✅ All datastores connected")
	return db, nil
}

// Close shuts every Scylla session and the Redis client.
func (db *DB) Close() {
	if db.Scylla != nil {
		db.Scylla.mu.Lock()
		for keyspace, session := range db.Scylla.sessions {
			session.Close()
			log.Printf("🔌 ScyllaDB session closed for keyspace '%s'", keyspace)
		}
		db.Scylla.mu.Unlock()
	}
	if db.Redis != nil {
		db.Redis.Close()
	}
}

// =============================================
// SCYLLA DB (multi-keyspace with roles)
// =============================================

// loadScyllaConfigs reads the keyspace configurations from the environment.
func loadScyllaConfigs() map[string]ScyllaKeyspaceConfig {
	configs := make(map[string]ScyllaKeyspaceConfig)

	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	timeout := 5 * time.Second
	numConns := 20
	consistency := gocql.Quorum

	for _, ks := range []struct{ envPrefix string }{
		{"SCYLLA_KS_USERS"},
		{"SCYLLA_KS_PRODUCTS"},
		{"SCYLLA_KS_ORDERS"},
	} {
		keyspace := os.Getenv(ks.envPrefix + "_KEYSPACE")
		if keyspace == "" {
			continue
		}
		configs[keyspace] = ScyllaKeyspaceConfig{
			Hosts:       hosts,
			Keyspace:    keyspace,
			Username:    os.Getenv(ks.envPrefix + "_ROLE"),
			Password:    os.Getenv(ks.envPrefix + "_PASSWORD"),
			Timeout:     timeout,
			NumConns:    numConns,
			Consistency: consistency,
		}
	}

	return configs
}

func createScyllaCluster(config ScyllaKeyspaceConfig) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(config.Hosts...)
	cluster.Keyspace = config.Keyspace
	cluster.Consistency = config.Consistency
	cluster.Timeout = config.Timeout
	cluster.NumConns = config.NumConns
	cluster.MaxWaitSchemaAgreement = 30 * time.Second
	cluster.ReconnectInterval = 1 * time.Second
	cluster.Authenticator = gocql.PasswordAuthenticator{
		Username: config.Username,
		Password: config.Password,
	}
	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())
	return cluster
}

// GetSession returns the session for a keyspace, recreating it if it went stale.
func (sm *ScyllaManager) GetSession(keyspace string) (*gocql.Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	config, exists := sm.configs[keyspace]
	if !exists {
		return nil, fmt.Errorf("keyspace '%s' not configured", keyspace)
	}

	if session, exists := sm.sessions[keyspace]; exists {
		if err := session.Query("SELECT now() FROM system.local").Exec(); err == nil {
			return session, nil
		}
		session.Close()
	}

	session, err := createScyllaCluster(config).CreateSession()
	if err != nil {
		return nil, fmt.Errorf("session creation failed for %s: %v", keyspace, err)
	}

	sm.sessions[keyspace] = session
	log.Printf("✅ New ScyllaDB session for keyspace '%s' (role: %s)", keyspace, config.Username)
	return session, nil
}

// =============================================
// SESSION ACCESS HELPERS
// =============================================

// UsersSession returns the session for the users keyspace.
func (db *DB) UsersSession() (*gocql.Session, error) {
	keyspace := os.Getenv("SCYLLA_KS_USERS_KEYSPACE")
	if keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KS_USERS_KEYSPACE not configured")
	}
	return db.Scylla.GetSession(keyspace)
}

// ProductsSession returns the session for the products keyspace.
func (db *DB) ProductsSession() (*gocql.Session, error) {
	keyspace := os.Getenv("SCYLLA_KS_PRODUCTS_KEYSPACE")
	if keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KS_PRODUCTS_KEYSPACE not configured")
	}
	return db.Scylla.GetSession(keyspace)
}

// OrdersSession returns the session for the orders keyspace.
func (db *DB) OrdersSession() (*gocql.Session, error) {
	keyspace := os.Getenv("SCYLLA_KS_ORDERS_KEYSPACE")
	if keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KS_ORDERS_KEYSPACE not configured")
	}
	return db.Scylla.GetSession(keyspace)
}

// =============================================
// ELASTICSEARCH
// =============================================

func connectElastic(url string) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	res, err := client.Info()
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return client, nil
}

// =============================================
// MINIO
// =============================================

func connectMinIO(ctx context.Context, endpoint string) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		return nil, err
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Println("🪣 Bucket created:", bucketName)
	} else {
		log.Println("🪣 MinIO bucket already present:", bucketName)
	}

	return client, nil
}
