package settings

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"go-leave/internal/calendar"
	"go-leave/internal/domain"
	settingserrors "go-leave/internal/settings/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const SnapshotKeyPrefix = "settings:snapshot:"

func SnapshotKey(organizationID string) string {
	return SnapshotKeyPrefix + organizationID
}

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	Snapshot(ctx context.Context, organizationID string) (Snapshot, error)
	LeavePolicy(ctx context.Context, organizationID string) (domain.LeavePolicy, error)
	Workflows(ctx context.Context, organizationID string) (domain.Workflows, error)
	WorkingDays(ctx context.Context, organizationID string) (calendar.WorkingDays, error)
	AccountingPeriod(ctx context.Context, organizationID string) (domain.AccountingPeriod, error)

	UpdatePolicy(ctx context.Context, organizationID, actorID string, req UpdatePolicyRequest) (domain.LeavePolicy, error)
	SetOverride(ctx context.Context, organizationID, actorID, employeeID string, req SetOverrideRequest) (domain.LeavePolicy, error)
	RemoveOverride(ctx context.Context, organizationID, actorID, employeeID string) (domain.LeavePolicy, error)
	UpsertWorkflow(ctx context.Context, organizationID string, req UpsertWorkflowRequest) (WorkflowResponse, error)
	DeleteWorkflow(ctx context.Context, organizationID, department string) error
	UpdateWorkingDays(ctx context.Context, organizationID string, req UpdateWorkingDaysRequest) (calendar.WorkingDays, error)
	UpdateAccountingPeriod(ctx context.Context, organizationID string, req UpdateAccountingPeriodRequest) (domain.AccountingPeriod, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	ttl    time.Duration
	sf     *singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

// NewService caches snapshots in rdb for ttl. A nil rdb disables caching.
func NewService(repo Repository, rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		ttl:    ttl,
		sf:     &singleflight.Group{},
		now:    time.Now,
		logger: l,
	}
}

func (s *service) Snapshot(ctx context.Context, organizationID string) (Snapshot, error) {
	cacheKey := SnapshotKey(organizationID)
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var snap Snapshot
			if json.Unmarshal([]byte(cached), &snap) == nil {
				return snap, nil
			}
			log.Warn("discarding unreadable settings snapshot", zap.String("key", cacheKey))
		} else if !errors.Is(err, redis.Nil) {
			log.Warn("settings cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		snap, err := s.load(ctx, organizationID)
		if err != nil {
			return Snapshot{}, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(snap); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, string(data), s.ttl).Err(); err != nil {
					log.Warn("settings cache write failed", zap.Error(err))
				}
			}
		}
		return snap, nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

// load reads the stored settings, falling back to defaults per record.
func (s *service) load(ctx context.Context, organizationID string) (Snapshot, error) {
	snap := DefaultSnapshot()

	policy, err := s.repo.FindPolicy(ctx, organizationID)
	switch {
	case err == nil:
		snap.Policy = domain.LeavePolicy{Defaults: policy.Defaults, Overrides: make(map[string]domain.Quota, len(policy.Overrides))}
		for id, q := range policy.Overrides {
			if key, err := overrideKey(id); err == nil {
				snap.Policy.Overrides[key] = q
			}
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Snapshot{}, apperror.ErrInternal.WithErr(err)
	}

	workflows, err := s.repo.FindWorkflows(ctx, organizationID)
	if err != nil {
		return Snapshot{}, apperror.ErrInternal.WithErr(err)
	}
	for _, w := range workflows {
		snap.Workflows[w.Department] = w.ApproverRole
	}

	cfg, err := s.repo.FindAppConfig(ctx, organizationID)
	switch {
	case err == nil:
		snap.WorkingDays = cfg.WorkingDays
		snap.Period = cfg.Period()
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Snapshot{}, apperror.ErrInternal.WithErr(err)
	}

	return snap, nil
}

func (s *service) invalidate(ctx context.Context, organizationID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, SnapshotKey(organizationID)).Err(); err != nil {
		s.logger.Error("failed to invalidate settings cache",
			zap.String("organization_id", organizationID),
			zap.Error(err),
		)
	}
}

func (s *service) LeavePolicy(ctx context.Context, organizationID string) (domain.LeavePolicy, error) {
	snap, err := s.Snapshot(ctx, organizationID)
	return snap.Policy, err
}

func (s *service) Workflows(ctx context.Context, organizationID string) (domain.Workflows, error) {
	snap, err := s.Snapshot(ctx, organizationID)
	return snap.Workflows, err
}

func (s *service) WorkingDays(ctx context.Context, organizationID string) (calendar.WorkingDays, error) {
	snap, err := s.Snapshot(ctx, organizationID)
	return snap.WorkingDays, err
}

func (s *service) AccountingPeriod(ctx context.Context, organizationID string) (domain.AccountingPeriod, error) {
	snap, err := s.Snapshot(ctx, organizationID)
	return snap.Period, err
}

func (s *service) savePolicy(ctx context.Context, organizationID, actorID string, policy domain.LeavePolicy) (domain.LeavePolicy, error) {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return domain.LeavePolicy{}, apperror.InvalidField("organization_id")
	}

	rec := &LeavePolicyRecord{
		OrganizationID: orgUUID,
		Defaults:       policy.Defaults,
		Overrides:      policy.Overrides,
		UpdatedAt:      s.now().UTC(),
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		rec.UpdatedBy = uuid.NullUUID{UUID: actor, Valid: true}
	}

	if err := s.repo.UpsertPolicy(ctx, rec); err != nil {
		s.logger.Error("upsert leave policy failed", zap.String("organization_id", organizationID), zap.Error(err))
		return domain.LeavePolicy{}, apperror.ErrInternal.WithErr(err)
	}
	s.invalidate(ctx, organizationID)

	contextutil.GetLogger(ctx, s.logger).Info("leave policy updated",
		zap.String("organization_id", organizationID),
		zap.String("actor_id", actorID),
		zap.Int("overrides", len(policy.Overrides)),
	)
	return policy, nil
}

func (s *service) UpdatePolicy(ctx context.Context, organizationID, actorID string, req UpdatePolicyRequest) (domain.LeavePolicy, error) {
	defaults, err := parseQuota(req.Defaults)
	if err != nil {
		return domain.LeavePolicy{}, settingserrors.ErrInvalidQuota.WithErr(err)
	}

	overrides := make(map[string]domain.Quota, len(req.Overrides))
	for employeeID, raw := range req.Overrides {
		key, err := overrideKey(employeeID)
		if err != nil {
			return domain.LeavePolicy{}, apperror.InvalidField("overrides." + employeeID)
		}
		q, err := parseQuota(raw)
		if err != nil {
			return domain.LeavePolicy{}, settingserrors.ErrInvalidQuota.WithErr(err)
		}
		overrides[key] = q
	}

	return s.savePolicy(ctx, organizationID, actorID, domain.LeavePolicy{Defaults: defaults, Overrides: overrides})
}

// SetOverride replaces the employee's whole override record.
func (s *service) SetOverride(ctx context.Context, organizationID, actorID, employeeID string, req SetOverrideRequest) (domain.LeavePolicy, error) {
	key, err := overrideKey(employeeID)
	if err != nil {
		return domain.LeavePolicy{}, apperror.InvalidField("employee_id")
	}
	q, err := parseQuota(req.Quota)
	if err != nil {
		return domain.LeavePolicy{}, settingserrors.ErrInvalidQuota.WithErr(err)
	}

	current, err := s.load(ctx, organizationID)
	if err != nil {
		return domain.LeavePolicy{}, err
	}
	policy := clonePolicy(current.Policy)
	policy.Overrides[key] = q

	return s.savePolicy(ctx, organizationID, actorID, policy)
}

func (s *service) RemoveOverride(ctx context.Context, organizationID, actorID, employeeID string) (domain.LeavePolicy, error) {
	key, err := overrideKey(employeeID)
	if err != nil {
		return domain.LeavePolicy{}, apperror.InvalidField("employee_id")
	}
	current, err := s.load(ctx, organizationID)
	if err != nil {
		return domain.LeavePolicy{}, err
	}
	if !current.Policy.Override(key).IsSome() {
		return domain.LeavePolicy{}, settingserrors.ErrOverrideNotFound
	}
	policy := clonePolicy(current.Policy)
	delete(policy.Overrides, key)

	return s.savePolicy(ctx, organizationID, actorID, policy)
}

func (s *service) UpsertWorkflow(ctx context.Context, organizationID string, req UpsertWorkflowRequest) (WorkflowResponse, error) {
	department := strings.TrimSpace(req.Department)
	if department == "" {
		return WorkflowResponse{}, settingserrors.ErrInvalidDepartment
	}
	role, err := domain.ParseApproverRole(req.ApproverRole)
	if err != nil {
		return WorkflowResponse{}, settingserrors.ErrInvalidApproverRole
	}
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return WorkflowResponse{}, apperror.InvalidField("organization_id")
	}

	rec := &LeaveWorkflowRecord{
		OrganizationID: orgUUID,
		Department:     department,
		ApproverRole:   role,
		UpdatedAt:      s.now().UTC(),
	}
	if err := s.repo.UpsertWorkflow(ctx, rec); err != nil {
		s.logger.Error("upsert leave workflow failed", zap.String("department", department), zap.Error(err))
		return WorkflowResponse{}, apperror.ErrInternal.WithErr(err)
	}
	s.invalidate(ctx, organizationID)

	return WorkflowResponse{Department: department, ApproverRole: string(role)}, nil
}

// DeleteWorkflow reverts the department to the LINE_MANAGER default.
func (s *service) DeleteWorkflow(ctx context.Context, organizationID, department string) error {
	deleted, err := s.repo.DeleteWorkflow(ctx, organizationID, strings.TrimSpace(department))
	if err != nil {
		return apperror.ErrInternal.WithErr(err)
	}
	if !deleted {
		return settingserrors.ErrWorkflowNotFound
	}
	s.invalidate(ctx, organizationID)
	return nil
}

func (s *service) UpdateWorkingDays(ctx context.Context, organizationID string, req UpdateWorkingDaysRequest) (calendar.WorkingDays, error) {
	wd, err := calendar.ParseWorkingDays(req.WorkingDays)
	if err != nil || len(wd.Names()) == 0 {
		return calendar.WorkingDays{}, settingserrors.ErrInvalidWorkingDays
	}

	current, err := s.load(ctx, organizationID)
	if err != nil {
		return calendar.WorkingDays{}, err
	}
	if err := s.saveAppConfig(ctx, organizationID, wd, current.Period); err != nil {
		return calendar.WorkingDays{}, err
	}
	return wd, nil
}

func (s *service) UpdateAccountingPeriod(ctx context.Context, organizationID string, req UpdateAccountingPeriodRequest) (domain.AccountingPeriod, error) {
	kind, err := domain.ParsePeriodKind(req.Kind)
	if err != nil {
		return domain.AccountingPeriod{}, settingserrors.ErrInvalidPeriod.WithErr(err)
	}
	period := domain.AccountingPeriod{Kind: kind, FiscalStartMonth: time.Month(req.FiscalStartMonth)}
	if kind != domain.PeriodFiscalYear {
		period.FiscalStartMonth = 0
	}
	if err := period.Validate(); err != nil {
		return domain.AccountingPeriod{}, settingserrors.ErrInvalidPeriod.WithErr(err)
	}

	current, err := s.load(ctx, organizationID)
	if err != nil {
		return domain.AccountingPeriod{}, err
	}
	if err := s.saveAppConfig(ctx, organizationID, current.WorkingDays, period); err != nil {
		return domain.AccountingPeriod{}, err
	}
	return period, nil
}

func (s *service) saveAppConfig(ctx context.Context, organizationID string, wd calendar.WorkingDays, period domain.AccountingPeriod) error {
	orgUUID, err := uuid.Parse(organizationID)
	if err != nil {
		return apperror.InvalidField("organization_id")
	}

	month := int(period.FiscalStartMonth)
	if month == 0 {
		month = 1
	}
	rec := &AppConfigRecord{
		OrganizationID:   orgUUID,
		WorkingDays:      wd,
		PeriodKind:       period.Kind,
		FiscalStartMonth: month,
		UpdatedAt:        s.now().UTC(),
	}
	if err := s.repo.UpsertAppConfig(ctx, rec); err != nil {
		s.logger.Error("upsert app config failed", zap.String("organization_id", organizationID), zap.Error(err))
		return apperror.ErrInternal.WithErr(err)
	}
	s.invalidate(ctx, organizationID)
	return nil
}

func clonePolicy(p domain.LeavePolicy) domain.LeavePolicy {
	out := domain.LeavePolicy{
		Defaults:  p.Defaults.Clone(),
		Overrides: make(map[string]domain.Quota, len(p.Overrides)+1),
	}
	for k, v := range p.Overrides {
		out.Overrides[k] = v.Clone()
	}
	return out
}

func workflowResponses(w domain.Workflows) []WorkflowResponse {
	out := make([]WorkflowResponse, 0, len(w))
	for dept, role := range w {
		out = append(out, WorkflowResponse{Department: dept, ApproverRole: string(role)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}

// overrideKey is the canonical lower-case form that LeavePolicy.QuotaFor is
// looked up with.
func overrideKey(employeeID string) (string, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
