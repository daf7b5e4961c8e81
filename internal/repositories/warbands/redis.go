package warbands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/weirdoworks/warband-bot/internal/entities"
	wberr "github.com/weirdoworks/warband-bot/internal/errors"
)

// Data is the serialized form of a warband in Redis. Weirdos are plain data
// and marshal as-is; derived totals are stored for display but recomputed by
// the service on every write.
type Data struct {
	ID         string             `json:"id"`
	OwnerID    string             `json:"owner_id"`
	Name       string             `json:"name"`
	Ability    entities.Ability   `json:"ability,omitempty"`
	PointLimit int                `json:"point_limit"`
	Weirdos    []*entities.Weirdo `json:"weirdos"`
	TotalCost  int                `json:"total_cost"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedis creates a Redis-backed warband repository
func NewRedis(client redis.UniversalClient, timeProvider TimeProvider) Repository {
	if client == nil {
		panic("redis client cannot be nil")
	}
	if timeProvider == nil {
		timeProvider = RealTimeProvider{}
	}

	return &redisRepo{
		client:       client,
		timeProvider: timeProvider,
	}
}

func warbandKey(id string) string {
	return fmt.Sprintf("warband:%s", id)
}

func ownerKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:warbands", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, warband *entities.Warband) error {
	if warband == nil {
		return wberr.InvalidArgument("warband cannot be nil")
	}
	if warband.ID == "" {
		return wberr.InvalidArgument("warband ID is required")
	}

	now := r.timeProvider.Now()
	warband.CreatedAt = now
	warband.UpdatedAt = now

	jsonData, err := json.Marshal(toData(warband))
	if err != nil {
		return wberr.Wrap(err, "failed to marshal warband")
	}

	created, err := r.client.SetNX(ctx, warbandKey(warband.ID), string(jsonData), 0).Result()
	if err != nil {
		return wberr.Wrap(err, "failed to store warband")
	}
	if !created {
		return wberr.AlreadyExistsf("warband with ID '%s' already exists", warband.ID).
			WithMeta("warband_id", warband.ID)
	}

	if err := r.client.SAdd(ctx, ownerKey(warband.OwnerID), warband.ID).Err(); err != nil {
		return wberr.Wrap(err, "failed to index warband by owner")
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Warband, error) {
	if id == "" {
		return nil, wberr.InvalidArgument("warband ID is required")
	}

	jsonData, err := r.client.Get(ctx, warbandKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, wberr.NotFoundf("warband with ID '%s' not found", id).
				WithMeta("warband_id", id)
		}
		return nil, wberr.Wrap(err, "failed to get warband")
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, wberr.Wrap(err, "failed to unmarshal warband")
	}

	return toWarband(&data), nil
}

func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Warband, error) {
	if ownerID == "" {
		return nil, wberr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, wberr.Wrap(err, "failed to list owner warbands")
	}

	warbandList := make([]*entities.Warband, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			warband, err := r.Get(ctx, id)
			if err != nil {
				return wberr.Wrapf(err, "failed to get warband %s", id)
			}
			warbandList[i] = warband
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return warbandList, nil
}

func (r *redisRepo) Update(ctx context.Context, warband *entities.Warband) error {
	if warband == nil {
		return wberr.InvalidArgument("warband cannot be nil")
	}
	if warband.ID == "" {
		return wberr.InvalidArgument("warband ID is required")
	}

	warband.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(toData(warband))
	if err != nil {
		return wberr.Wrap(err, "failed to marshal warband")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, warbandKey(warband.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerKey(warband.OwnerID), warband.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return wberr.Wrap(err, "failed to update warband")
	}

	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	warband, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, warbandKey(id))
	pipe.SRem(ctx, ownerKey(warband.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return wberr.Wrap(err, "failed to delete warband")
	}

	return nil
}

func toData(warband *entities.Warband) *Data {
	return &Data{
		ID:         warband.ID,
		OwnerID:    warband.OwnerID,
		Name:       warband.Name,
		Ability:    warband.Ability,
		PointLimit: warband.PointLimit,
		Weirdos:    warband.Weirdos,
		TotalCost:  warband.TotalCost,
		CreatedAt:  warband.CreatedAt,
		UpdatedAt:  warband.UpdatedAt,
	}
}

func toWarband(data *Data) *entities.Warband {
	return &entities.Warband{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Name:       data.Name,
		Ability:    data.Ability,
		PointLimit: data.PointLimit,
		Weirdos:    data.Weirdos,
		TotalCost:  data.TotalCost,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
