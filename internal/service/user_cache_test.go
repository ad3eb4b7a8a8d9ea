package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/BloggingApp/blog-service/internal/repository"
	"github.com/BloggingApp/blog-service/internal/repository/postgres"
	"github.com/BloggingApp/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type memUserCacheRepo struct {
	users       map[uuid.UUID]model.CachedUser
	findByIDHit int
}

func newMemUserCacheRepo() *memUserCacheRepo {
	return &memUserCacheRepo{
		users: make(map[uuid.UUID]model.CachedUser),
	}
}

func (m *memUserCacheRepo) Create(_ context.Context, cachedUser model.CachedUser) error {
	m.users[cachedUser.ID] = cachedUser
	return nil
}

func (m *memUserCacheRepo) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	user, ok := m.users[id]
	if !ok {
		return pgx.ErrNoRows
	}

	for column, value := range updates {
		switch column {
		case "username":
			user.Username = value.(string)
		case "first_name":
			firstName := value.(string)
			user.FirstName = &firstName
		case "last_name":
			lastName := value.(string)
			user.LastName = &lastName
		case "email":
			email := value.(string)
			user.Email = &email
		default:
			return postgres.ErrFieldsNotAllowedToUpdate
		}
	}

	m.users[id] = user
	return nil
}

func (m *memUserCacheRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CachedUser, error) {
	m.findByIDHit++

	user, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	return &user, nil
}

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	valueJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	f.store[key] = string(valueJSON)
	return nil
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	value, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.store, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func newTestUserCacheService(pg *memUserCacheRepo, rdb *fakeRedis) UserCache {
	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{UserCache: pg},
		Redis:    &redisrepo.RedisRepository{Default: rdb},
	}
	return newUserCacheService(zap.NewNop(), repo, nil)
}

func TestUserCacheFindByID(t *testing.T) {
	ctx := context.Background()

	pg := newMemUserCacheRepo()
	rdb := newFakeRedis()
	s := newTestUserCacheService(pg, rdb)

	id := uuid.New()
	pg.users[id] = model.CachedUser{ID: id, Username: "johndoe"}

	user, err := s.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "johndoe" {
		t.Errorf("got username %q, want johndoe", user.Username)
	}

	// the second read must be served from redis
	if _, err := s.FindByID(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pg.findByIDHit != 1 {
		t.Errorf("got %d postgres reads, want 1", pg.findByIDHit)
	}

	if _, err := s.FindByID(ctx, uuid.New()); err != pgx.ErrNoRows {
		t.Errorf("got %v, want %v", err, pgx.ErrNoRows)
	}
}

func TestUserCacheFindByIDCachedNull(t *testing.T) {
	ctx := context.Background()

	pg := newMemUserCacheRepo()
	rdb := newFakeRedis()
	s := newTestUserCacheService(pg, rdb)

	id := uuid.New()
	pg.users[id] = model.CachedUser{ID: id, Username: "johndoe"}

	// an externally written "null" entry must not surface as a nil user
	rdb.store[redisrepo.UserCacheKey(id.String())] = "null"

	user, err := s.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil {
		t.Fatal("got nil user for a cached null entry")
	}
	if user.Username != "johndoe" {
		t.Errorf("got username %q, want johndoe", user.Username)
	}
}

func TestUserCacheCreateOrGet(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches an unknown user from the user-service", func(t *testing.T) {
		id := uuid.New()

		userService := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/users/@me" {
				t.Errorf("got path %q, want /users/@me", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer token" {
				t.Errorf("access token was not forwarded")
			}
			json.NewEncoder(w).Encode(model.CachedUser{ID: id, Username: "johndoe"})
		}))
		defer userService.Close()
		viper.Set("user-service.api", userService.URL)

		pg := newMemUserCacheRepo()
		s := newTestUserCacheService(pg, newFakeRedis())

		user, err := s.CreateOrGet(ctx, id, "token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "johndoe" {
			t.Errorf("got username %q, want johndoe", user.Username)
		}
		if _, ok := pg.users[id]; !ok {
			t.Error("fetched user was not stored in the cache table")
		}
	})

	t.Run("reports a missing user record", func(t *testing.T) {
		userService := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer userService.Close()
		viper.Set("user-service.api", userService.URL)

		s := newTestUserCacheService(newMemUserCacheRepo(), newFakeRedis())

		if _, err := s.CreateOrGet(ctx, uuid.New(), "token"); err != ErrNoUserRecord {
			t.Errorf("got %v, want %v", err, ErrNoUserRecord)
		}
	})
}

func TestUserCacheUpdate(t *testing.T) {
	ctx := context.Background()

	pg := newMemUserCacheRepo()
	rdb := newFakeRedis()
	s := newTestUserCacheService(pg, rdb)

	id := uuid.New()
	pg.users[id] = model.CachedUser{ID: id, Username: "johndoe"}

	// warm the redis entry, then make sure the update invalidates it
	if _, err := s.FindByID(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Update(ctx, id, map[string]interface{}{"username": "janedoe"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := rdb.store[redisrepo.UserCacheKey(id.String())]; ok {
		t.Error("redis entry was not invalidated")
	}

	user, err := s.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "janedoe" {
		t.Errorf("got username %q, want janedoe", user.Username)
	}
}
