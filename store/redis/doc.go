// Package redis provides a store.Store backed by Redis strings.
//
// Every key is stored as a single Redis string under a configurable
// prefix ("yalog:" by default), so multiple applications can share one
// Redis database without colliding.
//
// # Usage
//
//	st := redis.NewStore(redis.Options{
//		Addr: "localhost:6379",
//	})
//	defer st.Close()
//
//	factory := yalog.NewFactory(yalog.Options{Store: st})
//
// An existing client can be reused:
//
//	client := goredis.NewClient(&goredis.Options{Addr: addr})
//	st := redis.NewStoreWithClient(client, "myapp:")
//
// # Testing
//
// The package tests run against miniredis, so no Redis server is
// needed to develop against this backend.
package redis
