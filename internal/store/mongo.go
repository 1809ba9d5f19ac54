package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/questionbank"
	"github.com/examprep/backend/internal/domain/user"
	"github.com/examprep/backend/internal/domain/wrongquestion"
)

const (
	usersCollection          = "users"
	banksCollection          = "questionbanks"
	questionsCollection      = "questions"
	wrongQuestionsCollection = "wrongquestions"
)

// MongoOptions tunes the document backend.
type MongoOptions struct {
	// Retention expires wrong-question records this long after their last
	// timestamp. Zero keeps them forever.
	Retention time.Duration
}

// MongoStore is the document backend. Cascades run as sequential deletes;
// readers tolerate the dangling references an interrupted cascade leaves.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*MongoStore)(nil)

func NewMongo(ctx context.Context, uri, database string, opts MongoOptions) (*MongoStore, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetMinPoolSize(2).
		SetServerSelectionTimeout(5 * time.Second).
		SetSocketTimeout(45 * time.Second).
		SetConnectTimeout(30 * time.Second).
		SetHeartbeatInterval(30 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := &MongoStore{client: client, db: client.Database(database)}
	if err := s.ensureIndexes(ctx, opts); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context, opts MongoOptions) error {
	wrongIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "question", Value: 1}}},
		{
			Keys:    bson.D{{Key: "user", Value: 1}, {Key: "question", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if opts.Retention > 0 {
		wrongIndexes = append(wrongIndexes, mongo.IndexModel{
			Keys:    bson.D{{Key: "timestamp", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(opts.Retention / time.Second)),
		})
	}

	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		banksCollection: {
			{Keys: bson.D{{Key: "creator", Value: 1}}},
			{Keys: bson.D{{Key: "isPublic", Value: 1}}},
			{Keys: bson.D{{Key: "creator", Value: 1}, {Key: "isPublic", Value: 1}}},
		},
		questionsCollection: {
			{Keys: bson.D{{Key: "questionBank", Value: 1}}},
			{Keys: bson.D{{Key: "type", Value: 1}}},
		},
		wrongQuestionsCollection: wrongIndexes,
	}
	for name, models := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) users() *mongo.Collection     { return s.db.Collection(usersCollection) }
func (s *MongoStore) banks() *mongo.Collection     { return s.db.Collection(banksCollection) }
func (s *MongoStore) questions() *mongo.Collection { return s.db.Collection(questionsCollection) }
func (s *MongoStore) wrongs() *mongo.Collection    { return s.db.Collection(wrongQuestionsCollection) }

func findOne(ctx context.Context, coll *mongo.Collection, filter bson.M, out any) error {
	err := coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// ============================================================================
// Users
// ============================================================================

func (s *MongoStore) CreateUser(ctx context.Context, u *user.User) error {
	doc, err := newUserDoc(u)
	if err != nil {
		return err
	}
	if _, err := s.users().InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("user %q: %w", u.Name, ErrDuplicate)
		}
		return err
	}
	return nil
}

func (s *MongoStore) GetUser(ctx context.Context, id string) (*user.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc userDoc
	if err := findOne(ctx, s.users(), bson.M{"_id": oid}, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *MongoStore) GetUserByName(ctx context.Context, name string) (*user.User, error) {
	var doc userDoc
	if err := findOne(ctx, s.users(), bson.M{"name": name}, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *MongoStore) ListUsers(ctx context.Context) ([]*user.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.users().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toDomain())
	}
	return users, nil
}

func (s *MongoStore) UserNames(ctx context.Context, ids []string) (map[string]string, error) {
	return s.names(ctx, s.users(), ids)
}

// names reads the name field of the documents in coll whose _id is in ids.
func (s *MongoStore) names(ctx context.Context, coll *mongo.Collection, ids []string) (map[string]string, error) {
	names := make(map[string]string)
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return names, nil
	}

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}}, opts)
	if err != nil {
		return nil, err
	}
	var docs []struct {
		ID   primitive.ObjectID `bson:"_id"`
		Name string             `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, d := range docs {
		names[d.ID.Hex()] = d.Name
	}
	return names, nil
}

// ============================================================================
// Question banks
// ============================================================================

func (s *MongoStore) SaveBank(ctx context.Context, bank *questionbank.QuestionBank) error {
	doc, err := newBankDoc(bank)
	if err != nil {
		return err
	}
	_, err = s.banks().InsertOne(ctx, doc)
	return err
}

func (s *MongoStore) GetBank(ctx context.Context, id string) (*questionbank.QuestionBank, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc bankDoc
	if err := findOne(ctx, s.banks(), bson.M{"_id": oid}, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (s *MongoStore) UpdateBank(ctx context.Context, bank *questionbank.QuestionBank) error {
	oid, err := objectID(bank.ID)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"name":        bank.Name,
		"description": bank.Description,
		"isPublic":    bank.IsPublic,
	}}
	res, err := s.banks().UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteBank(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.banks().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	questionIDs, err := s.questions().Distinct(ctx, "_id", bson.M{"questionBank": oid})
	if err != nil {
		return fmt.Errorf("list questions of bank %s: %w", id, err)
	}
	if len(questionIDs) > 0 {
		if _, err := s.wrongs().DeleteMany(ctx, bson.M{"question": bson.M{"$in": questionIDs}}); err != nil {
			return fmt.Errorf("delete wrong questions of bank %s: %w", id, err)
		}
	}
	if _, err := s.questions().DeleteMany(ctx, bson.M{"questionBank": oid}); err != nil {
		return fmt.Errorf("delete questions of bank %s: %w", id, err)
	}
	return nil
}

func (s *MongoStore) ListPublicBanks(ctx context.Context) ([]*questionbank.QuestionBank, error) {
	return s.listBanks(ctx, bson.M{"isPublic": true})
}

func (s *MongoStore) ListBanksByCreator(ctx context.Context, creatorID string) ([]*questionbank.QuestionBank, error) {
	oid, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return []*questionbank.QuestionBank{}, nil
	}
	return s.listBanks(ctx, bson.M{"creator": oid})
}

func (s *MongoStore) listBanks(ctx context.Context, filter bson.M) ([]*questionbank.QuestionBank, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.banks().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []bankDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	banks := make([]*questionbank.QuestionBank, 0, len(docs))
	for _, d := range docs {
		banks = append(banks, d.toDomain())
	}
	return banks, nil
}

func (s *MongoStore) BankNames(ctx context.Context, ids []string) (map[string]string, error) {
	return s.names(ctx, s.banks(), ids)
}

// AdjustQuestionCount uses a pipeline update so the count never drops below zero.
func (s *MongoStore) AdjustQuestionCount(ctx context.Context, bankID string, delta int) error {
	oid, err := objectID(bankID)
	if err != nil {
		return err
	}
	update := bson.A{bson.M{"$set": bson.M{
		"questionCount": bson.M{"$max": bson.A{0, bson.M{"$add": bson.A{"$questionCount", delta}}}},
	}}}
	res, err := s.banks().UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Questions
// ============================================================================

func (s *MongoStore) SaveQuestions(ctx context.Context, questions []*question.Question) error {
	if len(questions) == 0 {
		return nil
	}
	docs := make([]any, 0, len(questions))
	for _, q := range questions {
		doc, err := newQuestionDoc(q)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	_, err := s.questions().InsertMany(ctx, docs)
	return err
}

func (s *MongoStore) GetQuestion(ctx context.Context, id string) (*question.Question, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc questionDoc
	if err := findOne(ctx, s.questions(), bson.M{"_id": oid}, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain()
}

func (s *MongoStore) GetQuestions(ctx context.Context, ids []string) (map[string]*question.Question, error) {
	found := make(map[string]*question.Question)
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return found, nil
	}

	questions, err := s.findQuestions(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		found[q.ID] = q
	}
	return found, nil
}

func (s *MongoStore) ListQuestionsByBank(ctx context.Context, bankID string) ([]*question.Question, error) {
	oid, err := primitive.ObjectIDFromHex(bankID)
	if err != nil {
		return []*question.Question{}, nil
	}
	return s.findQuestions(ctx, bson.M{"questionBank": oid})
}

func (s *MongoStore) findQuestions(ctx context.Context, filter bson.M) ([]*question.Question, error) {
	// ObjectIDs are time-ordered, so _id order is insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.questions().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []questionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	questions := make([]*question.Question, 0, len(docs))
	for _, d := range docs {
		q, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (s *MongoStore) UpdateQuestion(ctx context.Context, q *question.Question) error {
	doc, err := newQuestionDoc(q)
	if err != nil {
		return err
	}
	res, err := s.questions().ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteQuestion(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.questions().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	if _, err := s.wrongs().DeleteMany(ctx, bson.M{"question": oid}); err != nil {
		return fmt.Errorf("delete wrong questions of question %s: %w", id, err)
	}
	return nil
}

// ============================================================================
// Wrong questions
// ============================================================================

// UpsertWrongQuestion relies on the unique (user, question) index. The server
// retries an upsert that loses a race for that index, so concurrent writers
// end with one document holding the last write.
func (s *MongoStore) UpsertWrongQuestion(ctx context.Context, wq *wrongquestion.WrongQuestion) (*wrongquestion.WrongQuestion, error) {
	userOID, err := objectID(wq.UserID)
	if err != nil {
		return nil, err
	}
	questionOID, err := objectID(wq.QuestionID)
	if err != nil {
		return nil, err
	}
	newID, err := objectID(wq.ID)
	if err != nil {
		return nil, err
	}
	answer, err := answerToRaw(wq.WrongAnswer)
	if err != nil {
		return nil, fmt.Errorf("encode wrong answer: %w", err)
	}

	filter := bson.M{"user": userOID, "question": questionOID}
	update := bson.M{
		"$set":         bson.M{"wrongAnswer": answer, "timestamp": wq.Timestamp},
		"$setOnInsert": bson.M{"_id": newID},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc wrongQuestionDoc
	if err := s.wrongs().FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.toDomain()
}

func (s *MongoStore) FindWrongQuestion(ctx context.Context, userID, questionID string) (*wrongquestion.WrongQuestion, error) {
	userOID, err := objectID(userID)
	if err != nil {
		return nil, err
	}
	questionOID, err := objectID(questionID)
	if err != nil {
		return nil, err
	}
	var doc wrongQuestionDoc
	if err := findOne(ctx, s.wrongs(), bson.M{"user": userOID, "question": questionOID}, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain()
}

func (s *MongoStore) GetWrongQuestion(ctx context.Context, id string) (*wrongquestion.WrongQuestion, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc wrongQuestionDoc
	if err := findOne(ctx, s.wrongs(), bson.M{"_id": oid}, &doc); err != nil {
		return nil, err
	}
	return doc.toDomain()
}

func (s *MongoStore) DeleteWrongQuestion(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.wrongs().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListWrongQuestionsByUser(ctx context.Context, userID string) ([]*wrongquestion.WrongQuestion, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return []*wrongquestion.WrongQuestion{}, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := s.wrongs().Find(ctx, bson.M{"user": oid}, opts)
	if err != nil {
		return nil, err
	}
	var docs []wrongQuestionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]*wrongquestion.WrongQuestion, 0, len(docs))
	for _, d := range docs {
		wq, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		records = append(records, wq)
	}
	return records, nil
}

// DropDatabase removes every collection. Used by tests against a throwaway database.
func (s *MongoStore) DropDatabase(ctx context.Context) error {
	return s.db.Drop(ctx)
}
