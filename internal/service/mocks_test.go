package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/pdfgen"
	"github.com/quizfolio/quizfolio-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) ([]*domain.User, error) {
	args := m.Called(ctx, email)
	users, _ := args.Get(0).([]*domain.User)
	return users, args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetWithSelections(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetWithDocuments(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	args := m.Called(tx)
	s, _ := args.Get(0).(store.UserStore)
	return s
}

// MockQuestionStore mocks the store.QuestionStore interface
type MockQuestionStore struct {
	mock.Mock
}

func (m *MockQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	args := m.Called(ctx, id)
	question, _ := args.Get(0).(*domain.Question)
	return question, args.Error(1)
}

func (m *MockQuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	args := m.Called(ctx)
	questions, _ := args.Get(0).([]*domain.Question)
	return questions, args.Error(1)
}

// MockAnswerStore mocks the store.AnswerStore interface
type MockAnswerStore struct {
	mock.Mock
}

func (m *MockAnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Answer, error) {
	args := m.Called(ctx, id)
	answer, _ := args.Get(0).(*domain.Answer)
	return answer, args.Error(1)
}

func (m *MockAnswerStore) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.Answer, error) {
	args := m.Called(ctx, questionID)
	answers, _ := args.Get(0).([]*domain.Answer)
	return answers, args.Error(1)
}

// MockSelectionStore mocks the store.SelectionStore interface
type MockSelectionStore struct {
	mock.Mock
}

func (m *MockSelectionStore) Add(ctx context.Context, userID uuid.UUID, answer *domain.Answer) error {
	args := m.Called(ctx, userID, answer)
	return args.Error(0)
}

func (m *MockSelectionStore) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockSelectionStore) WithTx(tx *sql.Tx) store.SelectionStore {
	args := m.Called(tx)
	s, _ := args.Get(0).(store.SelectionStore)
	return s
}

// MockDocumentStore mocks the store.DocumentStore interface
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Create(ctx context.Context, doc *domain.PDFDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.PDFDocument, error) {
	args := m.Called(ctx, userID)
	docs, _ := args.Get(0).([]*domain.PDFDocument)
	return docs, args.Error(1)
}

func (m *MockDocumentStore) Update(ctx context.Context, doc *domain.PDFDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentStore) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockDocumentStore) WithTx(tx *sql.Tx) store.DocumentStore {
	args := m.Called(tx)
	s, _ := args.Get(0).(store.DocumentStore)
	return s
}

// MockPDFService mocks the pdfgen.Service interface
type MockPDFService struct {
	mock.Mock
}

func (m *MockPDFService) CreatePDF(ctx context.Context, req pdfgen.GenerationRequest) (*domain.PDFDocument, error) {
	args := m.Called(ctx, req)
	doc, _ := args.Get(0).(*domain.PDFDocument)
	return doc, args.Error(1)
}

func (m *MockPDFService) UpdatePDF(ctx context.Context, id uuid.UUID, req pdfgen.GenerationRequest) (*domain.PDFDocument, error) {
	args := m.Called(ctx, id, req)
	doc, _ := args.Get(0).(*domain.PDFDocument)
	return doc, args.Error(1)
}

func (m *MockPDFService) DeletePDF(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPDFService) DownloadPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, id)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}
