package logger

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoHandler is a slog.Handler that mirrors every record into a MongoDB
// collection in addition to the wrapped handler. Used as an audit trail for
// order activity; enabled with MONGO_LOG_URI.
type mongoHandler struct {
	next  slog.Handler
	coll  *mongo.Collection
	attrs []slog.Attr
}

const logCollection = "app_logs"

func newMongoHandler(uri, db string, next slog.Handler) (slog.Handler, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &mongoHandler{
		next: next,
		coll: client.Database(db).Collection(logCollection),
	}, nil
}

func (h *mongoHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *mongoHandler) Handle(ctx context.Context, rec slog.Record) error {
	doc := bson.M{
		"time":    rec.Time,
		"level":   rec.Level.String(),
		"message": rec.Message,
	}
	for _, a := range h.attrs {
		doc[a.Key] = a.Value.Any()
	}
	rec.Attrs(func(a slog.Attr) bool {
		doc[a.Key] = a.Value.Any()
		return true
	})

	// Fire-and-forget: a slow or down Mongo must not stall request handling.
	go func() {
		insertCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_, _ = h.coll.InsertOne(insertCtx, doc)
	}()

	return h.next.Handle(ctx, rec)
}

func (h *mongoHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &mongoHandler{next: h.next.WithAttrs(attrs), coll: h.coll, attrs: merged}
}

func (h *mongoHandler) WithGroup(name string) slog.Handler {
	return &mongoHandler{next: h.next.WithGroup(name), coll: h.coll, attrs: h.attrs}
}
