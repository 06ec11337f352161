package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/admin-console/internal/auth"
	"github.com/spec-kit/admin-console/internal/domain"
	"github.com/spec-kit/admin-console/internal/events"
	"github.com/spec-kit/admin-console/internal/repository"
)

// DirectoryService orchestrates CRUD over users, roles, and teams and emits
// an audit event for every mutation.
type DirectoryService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	teams      repository.TeamRepository
	audit      repository.AuditRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// DirectoryDependencies encapsulates repo requirements.
type DirectoryDependencies struct {
	UserRepo   repository.UserRepository
	RoleRepo   repository.RoleRepository
	TeamRepo   repository.TeamRepository
	AuditRepo  repository.AuditRepository
	Dispatcher events.Dispatcher
}

// NewDirectoryService builds the service.
func NewDirectoryService(bcryptCost int, deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		users:      deps.UserRepo,
		roles:      deps.RoleRepo,
		teams:      deps.TeamRepo,
		audit:      deps.AuditRepo,
		dispatcher: deps.Dispatcher,
		bcryptCost: bcryptCost,
	}
}

// Overview bundles the dashboard listings.
type Overview struct {
	Users []domain.User
	Roles []domain.Role
	Teams []domain.Team
}

// GetOverview lists users, roles, and teams for the dashboard.
func (s *DirectoryService) GetOverview(ctx context.Context) (*Overview, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{Users: users, Roles: roles, Teams: teams}, nil
}

// RecentActivity lists the newest audit entries for the dashboard. A missing
// audit repo yields an empty trail.
func (s *DirectoryService) RecentActivity(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if s.audit == nil {
		return nil, nil
	}
	return s.audit.ListRecent(ctx, limit)
}

// CreateUser hashes the password and stores a new user.
func (s *DirectoryService) CreateUser(ctx context.Context, actor events.Actor, user *domain.User, password string) error {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.users.Create(ctx, user); err != nil {
		return err
	}
	s.publish(ctx, events.EventUserCreated, actor, domain.AuditActionCreate, "user", user.ID)
	return nil
}

// UpdateUser stores user profile changes. The password is not touched here,
// and a changed role only reaches the user's token at their next login.
func (s *DirectoryService) UpdateUser(ctx context.Context, actor events.Actor, user *domain.User) error {
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.publish(ctx, events.EventUserUpdated, actor, domain.AuditActionUpdate, "user", user.ID)
	return nil
}

// GetUser fetches a single user.
func (s *DirectoryService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListRoles lists roles ordered by name.
func (s *DirectoryService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

// CreateRole stores a new role.
func (s *DirectoryService) CreateRole(ctx context.Context, actor events.Actor, role *domain.Role) error {
	if err := s.roles.Create(ctx, role); err != nil {
		return err
	}
	s.publish(ctx, events.EventRoleCreated, actor, domain.AuditActionCreate, "role", role.ID)
	return nil
}

// UpdateRole stores role changes.
func (s *DirectoryService) UpdateRole(ctx context.Context, actor events.Actor, role *domain.Role) error {
	if err := s.roles.Update(ctx, role); err != nil {
		return err
	}
	s.publish(ctx, events.EventRoleUpdated, actor, domain.AuditActionUpdate, "role", role.ID)
	return nil
}

// GetRole fetches a single role.
func (s *DirectoryService) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roles.GetByID(ctx, id)
}

// ListTeams lists teams ordered by name.
func (s *DirectoryService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teams.List(ctx)
}

// CreateTeam stores a new team.
func (s *DirectoryService) CreateTeam(ctx context.Context, actor events.Actor, team *domain.Team) error {
	if err := s.teams.Create(ctx, team); err != nil {
		return err
	}
	s.publish(ctx, events.EventTeamCreated, actor, domain.AuditActionCreate, "team", team.ID)
	return nil
}

// UpdateTeam stores team changes.
func (s *DirectoryService) UpdateTeam(ctx context.Context, actor events.Actor, team *domain.Team) error {
	if err := s.teams.Update(ctx, team); err != nil {
		return err
	}
	s.publish(ctx, events.EventTeamUpdated, actor, domain.AuditActionUpdate, "team", team.ID)
	return nil
}

// GetTeam fetches a single team.
func (s *DirectoryService) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

func (s *DirectoryService) publish(ctx context.Context, eventType events.EventType, actor events.Actor, action domain.AuditAction, entityType string, entityID int64) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Timestamp:  time.Now(),
	})
}
