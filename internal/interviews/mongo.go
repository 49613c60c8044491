package interviews

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hireloop/scheduler/pkg/errors"
	"github.com/hireloop/scheduler/pkg/logger"
)

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}

var (
	interviewerIndex = mongo.IndexModel{
		Keys:    bson.D{{Key: FieldInterviewer, Value: 1}},
		Options: options.Index().SetName("by_interviewer"),
	}

	accountIndex = mongo.IndexModel{
		Keys: bson.D{
			{Key: AccountFieldInterviewer, Value: 1},
			{Key: AccountFieldProvider, Value: 1},
		},
		Options: options.Index().SetName("by_interviewer_provider").SetUnique(true),
	}
)

func NewStore(ctx context.Context, cfg MongoConfig, log logger.Logger) (*Store, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	db := client.Database(cfg.Database)

	interviewsColl := db.Collection("interviews")
	_, err = interviewsColl.Indexes().CreateOne(ctx, interviewerIndex)
	if err != nil {
		return nil, errors.WrapFail(err, "create interviews index")
	}

	accountsColl := db.Collection("accounts")
	_, err = accountsColl.Indexes().CreateOne(ctx, accountIndex)
	if err != nil {
		return nil, errors.WrapFail(err, "create accounts index")
	}

	return &Store{
		client:     client,
		interviews: mongoInterviews{coll: interviewsColl},
		accounts:   mongoAccounts{coll: accountsColl},
		log:        log.With("mongo_store"),
	}, nil
}

type Store struct {
	client     *mongo.Client
	interviews mongoInterviews
	accounts   mongoAccounts
	log        logger.Logger
}

func (s *Store) Interviews() Repo {
	return s.interviews
}

func (s *Store) Accounts() Accounts {
	return s.accounts
}

func (s *Store) Close(ctx context.Context) error {
	err := s.client.Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}

type mongoInterviews struct {
	coll *mongo.Collection
}

func (m mongoInterviews) Create(ctx context.Context, i Interview) (string, error) {
	randomSuffix := strconv.Itoa(rand.Intn(90) + 10)
	timestamp := strconv.FormatInt(time.Now().UnixMicro(), 16)
	i.ID = timestamp + randomSuffix

	_, err := m.coll.InsertOne(ctx, i)
	if err != nil {
		return "", errors.WrapFail(err, "insert interview")
	}

	return i.ID, nil
}

func (m mongoInterviews) Find(ctx context.Context, id string) (*Interview, error) {
	r := m.coll.FindOne(ctx, bson.M{"_id": id})
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find interview by id")
	}

	var parsed Interview
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interview")
	}

	return &parsed, nil
}

func (m mongoInterviews) Reschedule(ctx context.Context, id string, start, end time.Time) error {
	_, err := m.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			FieldStart:  start,
			FieldEnd:    end,
			FieldStatus: StatusRescheduled,
		}},
	)
	return errors.WrapFail(err, "update interview times")
}

func (m mongoInterviews) Cancel(ctx context.Context, id string) error {
	_, err := m.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			FieldStatus: StatusCancelled,
		}},
	)
	return errors.WrapFail(err, "cancel interview")
}

func (m mongoInterviews) SetFeedback(ctx context.Context, id string, feedback string) error {
	_, err := m.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			FieldFeedback: feedback,
		}},
	)
	return errors.WrapFail(err, "set interview feedback")
}

func (m mongoInterviews) ListByInterviewer(ctx context.Context, interviewerID string) ([]Interview, error) {
	cur, err := m.coll.Find(ctx, bson.M{FieldInterviewer: interviewerID})
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews by interviewer")
	}

	var listed []Interview
	err = cur.All(ctx, &listed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interviews")
	}

	return listed, nil
}

type mongoAccounts struct {
	coll *mongo.Collection
}

func (m mongoAccounts) Get(ctx context.Context, interviewerID, provider string) (*ConnectedAccount, error) {
	return m.findOne(ctx, bson.M{
		AccountFieldInterviewer: interviewerID,
		AccountFieldProvider:    provider,
	})
}

func (m mongoAccounts) GetByEmail(ctx context.Context, email, provider string) (*ConnectedAccount, error) {
	return m.findOne(ctx, bson.M{
		AccountFieldEmail:    email,
		AccountFieldProvider: provider,
	})
}

func (m mongoAccounts) findOne(ctx context.Context, filter bson.M) (*ConnectedAccount, error) {
	r := m.coll.FindOne(ctx, filter)
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find connected account")
	}

	var parsed ConnectedAccount
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode connected account")
	}

	return &parsed, nil
}

func (m mongoAccounts) Upsert(ctx context.Context, account ConnectedAccount) error {
	_, err := m.coll.UpdateOne(
		ctx,
		bson.M{
			AccountFieldInterviewer: account.InterviewerID,
			AccountFieldProvider:    account.Provider,
		},
		bson.M{"$set": account},
		options.Update().SetUpsert(true),
	)
	return errors.WrapFail(err, "upsert connected account")
}
