package application_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/internal/repository/mock"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

type mocks struct {
	User       *mock.MockUserRepo
	Project    *mock.MockProjectRepo
	Membership *mock.MockMembershipRepo
	Ticket     *mock.MockTicketRepo
	Comment    *mock.MockCommentRepo
	Audit      *mock.MockAuditRepo
}

// setupMocks builds a mock-backed repository container and a request
// context, and silences the audit hook for the test's lifetime.
func setupMocks(t *testing.T) (*repository.Repos, *mocks, *gin.Context) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &mocks{
		User:       mock.NewMockUserRepo(ctrl),
		Project:    mock.NewMockProjectRepo(ctrl),
		Membership: mock.NewMockMembershipRepo(ctrl),
		Ticket:     mock.NewMockTicketRepo(ctrl),
		Comment:    mock.NewMockCommentRepo(ctrl),
		Audit:      mock.NewMockAuditRepo(ctrl),
	}

	repos := &repository.Repos{
		User:       m.User,
		Project:    m.Project,
		Membership: m.Membership,
		Ticket:     m.Ticket,
		Comment:    m.Comment,
		Audit:      m.Audit,
	}

	origAudit := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = origAudit })

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", nil)

	return repos, m, c
}

// fakeImageStore records blob traffic so tests can assert on the
// destroy-before-upload ordering.
type fakeImageStore struct {
	uploads    []string
	destroys   []string
	uploadURL  string
	uploadErr  error
	destroyErr error
}

func (f *fakeImageStore) Upload(ctx context.Context, folder string, data []byte, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, folder)
	if f.uploadURL != "" {
		return f.uploadURL, nil
	}
	return "http://minio.local/trackdesk/" + folder + "/new-object", nil
}

func (f *fakeImageStore) Destroy(ctx context.Context, folder, publicID string) error {
	if f.destroyErr != nil {
		return f.destroyErr
	}
	f.destroys = append(f.destroys, folder+"/"+publicID)
	return nil
}
