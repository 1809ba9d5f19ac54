package store

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/examprep/backend/internal/domain/question"
	"github.com/examprep/backend/internal/domain/questionbank"
	"github.com/examprep/backend/internal/domain/user"
	"github.com/examprep/backend/internal/domain/wrongquestion"
)

// Documents use camelCase field names and ObjectID references.

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type bankDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          string             `bson:"name"`
	Description   string             `bson:"description"`
	IsPublic      bool               `bson:"isPublic"`
	Creator       primitive.ObjectID `bson:"creator"`
	CreatedAt     time.Time          `bson:"createdAt"`
	QuestionCount int                `bson:"questionCount"`
}

type optionDoc struct {
	Label   string `bson:"label"`
	Content string `bson:"content"`
}

type questionDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Type         string             `bson:"type"`
	Content      string             `bson:"content"`
	Options      []optionDoc        `bson:"options,omitempty"`
	Answer       bson.RawValue      `bson:"answer"`
	Explanation  string             `bson:"explanation"`
	QuestionBank primitive.ObjectID `bson:"questionBank"`
}

type wrongQuestionDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	User        primitive.ObjectID `bson:"user"`
	Question    primitive.ObjectID `bson:"question"`
	WrongAnswer bson.RawValue      `bson:"wrongAnswer"`
	Timestamp   time.Time          `bson:"timestamp"`
}

// objectID parses a hex ID. Strings that cannot be ObjectIDs cannot name a
// stored document, so they surface as ErrNotFound.
func objectID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("id %q: %w", hex, ErrNotFound)
	}
	return oid, nil
}

func objectIDs(hexes []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		if oid, err := primitive.ObjectIDFromHex(h); err == nil {
			oids = append(oids, oid)
		}
	}
	return oids
}

func answerToRaw(a question.Answer) (bson.RawValue, error) {
	t, data, err := bson.MarshalValue(a.Value())
	if err != nil {
		return bson.RawValue{}, err
	}
	return bson.RawValue{Type: t, Value: data}, nil
}

// answerFromRaw reads the untagged Mixed value; the BSON type picks the tag.
func answerFromRaw(rv bson.RawValue) (question.Answer, error) {
	switch rv.Type {
	case bson.TypeBoolean:
		return question.TrueFalse(rv.Boolean()), nil
	case bson.TypeString:
		return question.Single(rv.StringValue()), nil
	case bson.TypeArray:
		values, err := rv.Array().Values()
		if err != nil {
			return question.Answer{}, err
		}
		labels := make([]string, 0, len(values))
		for _, v := range values {
			label, ok := v.StringValueOK()
			if !ok {
				return question.Answer{}, fmt.Errorf("%w: non-string label in answer", question.ErrInvalidAnswer)
			}
			labels = append(labels, label)
		}
		return question.Multiple(labels...), nil
	case bson.TypeNull, bson.TypeUndefined, 0:
		return question.Answer{}, nil
	}
	return question.Answer{}, fmt.Errorf("%w: unsupported BSON type %s", question.ErrInvalidAnswer, rv.Type)
}

func newUserDoc(u *user.User) (userDoc, error) {
	oid, err := objectID(u.ID)
	if err != nil {
		return userDoc{}, err
	}
	return userDoc{ID: oid, Name: u.Name, Role: string(u.Role), CreatedAt: u.CreatedAt}, nil
}

func (d userDoc) toDomain() *user.User {
	return &user.User{ID: d.ID.Hex(), Name: d.Name, Role: user.Role(d.Role), CreatedAt: d.CreatedAt.UTC()}
}

func newBankDoc(b *questionbank.QuestionBank) (bankDoc, error) {
	oid, err := objectID(b.ID)
	if err != nil {
		return bankDoc{}, err
	}
	creator, err := objectID(b.CreatorID)
	if err != nil {
		return bankDoc{}, err
	}
	return bankDoc{
		ID:            oid,
		Name:          b.Name,
		Description:   b.Description,
		IsPublic:      b.IsPublic,
		Creator:       creator,
		CreatedAt:     b.CreatedAt,
		QuestionCount: b.QuestionCount,
	}, nil
}

func (d bankDoc) toDomain() *questionbank.QuestionBank {
	return &questionbank.QuestionBank{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Description:   d.Description,
		IsPublic:      d.IsPublic,
		CreatorID:     d.Creator.Hex(),
		CreatedAt:     d.CreatedAt.UTC(),
		QuestionCount: d.QuestionCount,
	}
}

func newQuestionDoc(q *question.Question) (questionDoc, error) {
	oid, err := objectID(q.ID)
	if err != nil {
		return questionDoc{}, err
	}
	bank, err := objectID(q.BankID)
	if err != nil {
		return questionDoc{}, err
	}
	answer, err := answerToRaw(q.Answer)
	if err != nil {
		return questionDoc{}, fmt.Errorf("encode answer of %s: %w", q.ID, err)
	}

	var options []optionDoc
	for _, o := range q.Options {
		options = append(options, optionDoc{Label: o.Label, Content: o.Content})
	}
	return questionDoc{
		ID:           oid,
		Type:         string(q.Type),
		Content:      q.Content,
		Options:      options,
		Answer:       answer,
		Explanation:  q.Explanation,
		QuestionBank: bank,
	}, nil
}

func (d questionDoc) toDomain() (*question.Question, error) {
	answer, err := answerFromRaw(d.Answer)
	if err != nil {
		return nil, fmt.Errorf("decode answer of %s: %w", d.ID.Hex(), err)
	}

	var options []question.Option
	for _, o := range d.Options {
		options = append(options, question.Option{Label: o.Label, Content: o.Content})
	}
	return &question.Question{
		ID:          d.ID.Hex(),
		Type:        question.Type(d.Type),
		Content:     d.Content,
		Options:     options,
		Answer:      answer,
		Explanation: d.Explanation,
		BankID:      d.QuestionBank.Hex(),
	}, nil
}

func (d wrongQuestionDoc) toDomain() (*wrongquestion.WrongQuestion, error) {
	answer, err := answerFromRaw(d.WrongAnswer)
	if err != nil {
		return nil, fmt.Errorf("decode wrong answer of %s: %w", d.ID.Hex(), err)
	}
	return &wrongquestion.WrongQuestion{
		ID:          d.ID.Hex(),
		UserID:      d.User.Hex(),
		QuestionID:  d.Question.Hex(),
		WrongAnswer: answer,
		Timestamp:   d.Timestamp.UTC(),
	}, nil
}
