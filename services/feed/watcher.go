// File: services/feed/watcher.go
package feed

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	reviewRepo "curbside/database/repository/review"
)

// Snapshot is the complete current member set for a subscription key, each
// member a plain field-name to value mapping. Feeds always resend the whole
// set rather than diffs.
type Snapshot struct {
	Key  Key
	Docs []map[string]interface{}
}

// CancelFunc stops a subscription. Safe to call more than once.
type CancelFunc func()

// Watcher delivers ordered snapshots of a collection's current member set.
type Watcher interface {
	Watch(ctx context.Context, key Key, deliver func(Snapshot)) (CancelFunc, error)
}

// MongoWatcher implements Watcher on MongoDB change streams. Each watch
// holds one server-side stream; every committed change triggers a re-query
// so the snapshot always reflects a committed state, delivered in commit
// order by a single goroutine per watch.
type MongoWatcher struct {
	db     *mongo.Database
	logger *zap.Logger
}

func NewMongoWatcher(db *mongo.Database, logger *zap.Logger) *MongoWatcher {
	return &MongoWatcher{db: db, logger: logger}
}

func (w *MongoWatcher) Watch(ctx context.Context, key Key, deliver func(Snapshot)) (CancelFunc, error) {
	filter, findOpts, err := querySpec(key)
	if err != nil {
		return nil, err
	}
	coll := w.db.Collection(key.Collection)

	pipeline := mongo.Pipeline{}
	for field, value := range filter {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"fullDocument." + field: value}}})
	}
	csOpts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	wctx, stop := context.WithCancel(ctx)
	stream, err := coll.Watch(wctx, pipeline, csOpts)
	if err != nil {
		stop()
		return nil, fmt.Errorf("failed to open change stream for %s: %w", key, err)
	}

	go w.run(wctx, stream, coll, key, filter, findOpts, deliver)

	var once sync.Once
	return func() { once.Do(stop) }, nil
}

func (w *MongoWatcher) run(ctx context.Context, stream *mongo.ChangeStream, coll *mongo.Collection,
	key Key, filter bson.M, findOpts *options.FindOptions, deliver func(Snapshot)) {
	defer stream.Close(context.Background())

	// Initial delivery, then one per committed change.
	if snap, err := w.query(ctx, coll, key, filter, findOpts); err == nil {
		deliver(snap)
	} else if ctx.Err() == nil {
		w.logger.Warn("feed: initial snapshot failed", zap.String("key", key.String()), zap.Error(err))
	}

	for stream.Next(ctx) {
		snap, err := w.query(ctx, coll, key, filter, findOpts)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Warn("feed: snapshot query failed", zap.String("key", key.String()), zap.Error(err))
			continue
		}
		deliver(snap)
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		w.logger.Error("feed: change stream terminated", zap.String("key", key.String()), zap.Error(err))
	}
}

func (w *MongoWatcher) query(ctx context.Context, coll *mongo.Collection, key Key,
	filter bson.M, findOpts *options.FindOptions) (Snapshot, error) {
	cursor, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return Snapshot{}, err
	}
	defer cursor.Close(ctx)

	docs := []map[string]interface{}{}
	if err := cursor.All(ctx, &docs); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Key: key, Docs: docs}, nil
}

// querySpec maps a subscription key to the member-set query behind it.
func querySpec(key Key) (bson.M, *options.FindOptions, error) {
	switch key.Collection {
	case CollTrucks:
		return bson.M{}, options.Find(), nil
	case CollMenu:
		if key.TruckID == "" {
			return nil, nil, fmt.Errorf("menu feed requires a truck scope")
		}
		return bson.M{"truckId": key.TruckID}, options.Find(), nil
	case CollOrders:
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		switch {
		case key.TruckID != "":
			return bson.M{"truckId": key.TruckID}, opts, nil
		case key.UserID != "":
			return bson.M{"userId": key.UserID}, opts, nil
		default:
			return nil, nil, fmt.Errorf("order feed requires a truck or user scope")
		}
	case CollReviews:
		if key.TruckID == "" {
			return nil, nil, fmt.Errorf("review feed requires a truck scope")
		}
		opts := options.Find().
			SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
			SetLimit(reviewRepo.TopReviewsLimit)
		return bson.M{"truckId": key.TruckID}, opts, nil
	default:
		return nil, nil, fmt.Errorf("unknown feed collection %q", key.Collection)
	}
}
