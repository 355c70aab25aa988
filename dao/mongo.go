package dao

import (
	"context"
	"errors"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/seftechub/checkout.api.seftechub.com/config"
	"github.com/seftechub/checkout.api.seftechub.com/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	c, err := mongo.Connect(ctx, clientOptions)

	// Assume the caller of this func cannot handle the case where there is no
	// database connection, so the service must crash here as it cannot
	// continue.
	if err != nil {
		log.Error(err)
		panic(err)
	}

	// Check we can connect to the mongodb instance. Failure at this point
	// means the connection details are invalid or the instance is down.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = c.Ping(pingContext, readpref.Primary())
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		panic(err)
	}

	client = c
	log.Info("connected to mongodb successfully")

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the
// backend driver
type MongoService struct {
	db                                 MongoDatabaseInterface
	CheckoutsCollectionName            string
	NotificationsCollectionName        string
	NotificationSettingsCollectionName string
}

// NewDAO returns a new DAO using the provided config
func NewDAO(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                                 database,
		CheckoutsCollectionName:            cfg.CheckoutsCollection,
		NotificationsCollectionName:        cfg.NotificationsCollection,
		NotificationSettingsCollectionName: cfg.NotificationSettingsCollection,
	}
}

// CreateCheckoutResource writes a new checkout resource to the DB
func (m *MongoService) CreateCheckoutResource(checkoutResource *models.CheckoutResourceDB) error {
	collection := m.db.Collection(m.CheckoutsCollectionName)
	_, err := collection.InsertOne(context.Background(), checkoutResource)

	return err
}

// GetCheckoutResource gets a checkout resource from the DB
// If the resource is not found, return nil
func (m *MongoService) GetCheckoutResource(id string) (*models.CheckoutResourceDB, error) {
	var resource models.CheckoutResourceDB

	collection := m.db.Collection(m.CheckoutsCollectionName)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": id})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&resource)
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// PatchCheckoutResource patches a checkout resource in the DB
func (m *MongoService) PatchCheckoutResource(id string, checkoutUpdate *models.CheckoutResourceDB) error {
	collection := m.db.Collection(m.CheckoutsCollectionName)

	patchUpdate := make(bson.M)

	// Patch only these fields
	if checkoutUpdate.Status != "" {
		patchUpdate["status"] = checkoutUpdate.Status
	}
	if checkoutUpdate.ProviderSessionID != "" {
		patchUpdate["provider_session_id"] = checkoutUpdate.ProviderSessionID
	}
	if !checkoutUpdate.CompletedAt.IsZero() {
		patchUpdate["completed_at"] = checkoutUpdate.CompletedAt
	}

	updateCall := bson.M{"$set": patchUpdate}

	_, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, updateCall)

	return err
}

// CreateNotification writes a new notification row to the DB
func (m *MongoService) CreateNotification(notification *models.NotificationDB) error {
	collection := m.db.Collection(m.NotificationsCollectionName)
	_, err := collection.InsertOne(context.Background(), notification)

	return err
}

// GetNotifications gets all notification rows for the given user, newest
// first
func (m *MongoService) GetNotifications(userID string) ([]models.NotificationDB, error) {
	var notifications []models.NotificationDB

	collection := m.db.Collection(m.NotificationsCollectionName)
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(context.Background(), bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	err = cursor.All(context.Background(), &notifications)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// GetNotificationSettings gets the notification settings row for the given
// user. If no settings row exists, return nil - absence of settings means no
// gating record is present.
func (m *MongoService) GetNotificationSettings(userID string) (*models.NotificationSettingsDB, error) {
	var settings models.NotificationSettingsDB

	collection := m.db.Collection(m.NotificationSettingsCollectionName)
	dbResource := collection.FindOne(context.Background(), bson.M{"_id": userID})

	err := dbResource.Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	err = dbResource.Decode(&settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}
