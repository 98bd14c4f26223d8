package postgres

import (
	"context"
	"time"

	"qna/internal/domain/entity"
	domainerrors "qna/internal/domain/errors"
	"qna/internal/domain/repository"
	"qna/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// answerRepository implements the repository.AnswerRepository interface.
type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository is the constructor for answerRepository.
func NewAnswerRepository(db *gorm.DB) repository.AnswerRepository {
	return &answerRepository{
		db: db,
	}
}

// Create persists a new answer. The question reference is written as-is,
// without checking that the question exists.
func (repo *answerRepository) Create(ctx context.Context, answer *entity.Answer) error {
	answerM := fromAnswerDomain(answer)
	if answerM.DatePosted.IsZero() {
		answerM.DatePosted = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(answerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required answer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create answer")
	}

	answer.ID = answerM.ID
	answer.DatePosted = answerM.DatePosted

	return nil
}

// ListByQuestion returns one page of answers for a question. The skip/limit
// window is applied in the query itself.
func (repo *answerRepository) ListByQuestion(ctx context.Context, questionID uuid.UUID, offset, limit int) ([]*entity.Answer, error) {
	var answerModels []*model.AnswerModel

	if err := repo.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("date_posted ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&answerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list answers by question")
	}

	answers := make([]*entity.Answer, 0, len(answerModels))
	for _, answerM := range answerModels {
		answers = append(answers, toAnswerDomain(answerM))
	}

	return answers, nil
}

// FindByID retrieves a single answer by its unique ID.
func (repo *answerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Answer, error) {
	var answerM model.AnswerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&answerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAnswerNotFound
		}

		return nil, errors.Wrap(err, "failed to find answer by ID")
	}

	return toAnswerDomain(&answerM), nil
}

// Update overwrites the body of an existing answer.
func (repo *answerRepository) Update(ctx context.Context, answer *entity.Answer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AnswerModel{}).
		Where("id = ?", answer.ID).
		Update("body", answer.Body)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update answer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnswerNotFound
	}

	return nil
}

// Delete removes an answer by ID.
func (repo *answerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AnswerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete answer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAnswerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAnswerDomain converts a GORM AnswerModel to a domain Answer entity.
func toAnswerDomain(data *model.AnswerModel) *entity.Answer {
	if data == nil {
		return nil
	}

	return &entity.Answer{
		ID:         data.ID,
		QuestionID: data.QuestionID,
		AuthorID:   data.AuthorID,
		Body:       data.Body,
		DatePosted: data.DatePosted,
	}
}

// fromAnswerDomain converts a domain Answer entity to a GORM AnswerModel.
func fromAnswerDomain(data *entity.Answer) *model.AnswerModel {
	if data == nil {
		return nil
	}

	return &model.AnswerModel{
		ID:         data.ID,
		QuestionID: data.QuestionID,
		AuthorID:   data.AuthorID,
		Body:       data.Body,
		DatePosted: data.DatePosted,
	}
}
