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

// questionRepository implements the repository.QuestionRepository interface.
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *gorm.DB) repository.QuestionRepository {
	return &questionRepository{
		db: db,
	}
}

// Create persists a new question. DatePosted is stamped here so the stored
// value and the returned entity agree.
func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)
	if questionM.DatePosted.IsZero() {
		questionM.DatePosted = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(questionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required question information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	question.ID = questionM.ID
	question.DatePosted = questionM.DatePosted

	return nil
}

// List returns one page of questions. Ordering is DatePosted then ID, a
// stable stand-in for insertion order.
func (repo *questionRepository) List(ctx context.Context, offset, limit int) ([]*entity.Question, error) {
	var questionModels []*model.QuestionModel

	if err := repo.db.WithContext(ctx).
		Order("date_posted ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&questionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	questions := make([]*entity.Question, 0, len(questionModels))
	for _, questionM := range questionModels {
		questions = append(questions, toQuestionDomain(questionM))
	}

	return questions, nil
}

// FindByID retrieves a single question by its unique ID.
func (repo *questionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Question, error) {
	var questionM model.QuestionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&questionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}

		return nil, errors.Wrap(err, "failed to find question by ID")
	}

	return toQuestionDomain(&questionM), nil
}

// Update overwrites the mutable columns of an existing question. Tags are
// replaced wholesale; author_id and date_posted are never written.
func (repo *questionRepository) Update(ctx context.Context, question *entity.Question) error {
	questionM := fromQuestionDomain(question)

	result := repo.db.WithContext(ctx).
		Model(&model.QuestionModel{}).
		Where("id = ?", question.ID).
		Select("title", "description", "tags").
		Updates(questionM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update question")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// Delete removes a question by ID. No cascade: answers keep their reference.
func (repo *questionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QuestionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete question")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuestionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toQuestionDomain converts a GORM QuestionModel to a domain Question entity.
func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	if data == nil {
		return nil
	}

	return &entity.Question{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        data.Tags,
		AuthorID:    data.AuthorID,
		DatePosted:  data.DatePosted,
	}
}

// fromQuestionDomain converts a domain Question entity to a GORM QuestionModel.
func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	if data == nil {
		return nil
	}

	return &model.QuestionModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags:        data.Tags,
		AuthorID:    data.AuthorID,
		DatePosted:  data.DatePosted,
	}
}
