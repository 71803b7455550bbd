package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codeXAI06/ReliefLink/schema"
)

// HelperGeo - interface for helper location profiles
type HelperGeo interface {
	UpdateHelperLocation(helperID uuid.UUID, phone string, loc schema.Location) error
	GetHelperLocation(helperID uuid.UUID) (*schema.Location, error)
	NearestHelpers(distance int, loc schema.Location) ([]schema.HelperProfile, error)
}

// UpdateHelperLocation upserts a helper's profile with the current
// position. Called on every dashboard load, so the write path is one
// upsert and nothing else.
func (m *mongoDB) UpdateHelperLocation(helperID uuid.UUID, phone string, loc schema.Location) error {
	c := m.client.Database(m.database).Collection(schema.HelperProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{"helper_id": helperID.String()}
	update := bson.M{"$set": bson.M{
		"phone":    phone,
		"location": schema.NewGeoJSON(loc),
		"ts":       time.Now().UTC().Unix(),
	}}

	result, err := c.UpdateOne(ctx, query, update, options.Update().SetUpsert(true))
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("update helper %s location with error: %s", helperID, err)
		return err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("update helper %s location, matched %d upserted %d",
		helperID, result.MatchedCount, result.UpsertedCount)
	return nil
}

func (m *mongoDB) GetHelperLocation(helperID uuid.UUID) (*schema.Location, error) {
	c := m.client.Database(m.database).Collection(schema.HelperProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var profile schema.HelperProfile
	err := c.FindOne(ctx, bson.M{"helper_id": helperID.String()}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query helper profile with error: %s", err)
	}

	if profile.Location == nil || len(profile.Location.Coordinates) != 2 {
		return nil, nil
	}

	return &schema.Location{
		Longitude: profile.Location.Coordinates[0],
		Latitude:  profile.Location.Coordinates[1],
	}, nil
}

// NearestHelpers - find helper profiles around a point, nearest first.
// distance is in meters.
func (m *mongoDB) NearestHelpers(distance int, loc schema.Location) ([]schema.HelperProfile, error) {
	c := m.client.Database(m.database).Collection(schema.HelperProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, distanceQuery(distance, loc))
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearest helpers with error: %s", err)
		return nil, fmt.Errorf("nearest helpers query with error: %s", err)
	}

	profiles := make([]schema.HelperProfile, 0)
	var record schema.HelperProfile

	for cur.Next(ctx) {
		if err := cur.Decode(&record); err != nil {
			return nil, fmt.Errorf("nearest helpers decode record with error: %s", err)
		}
		profiles = append(profiles, record)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearest helpers query gets %d profiles", len(profiles))

	return profiles, cur.Err()
}

// $nearSphere provides documents from nearest to farthest
func distanceQuery(distance int, cords schema.Location) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}},
			}, {
				Key:   "$maxDistance",
				Value: distance,
			}},
		}},
	}}
}
