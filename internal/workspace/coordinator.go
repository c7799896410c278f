package workspace

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go-shiftplan/internal/employee"
	"go-shiftplan/internal/hours"
	"go-shiftplan/internal/planilla"
	"go-shiftplan/internal/schedule"
	sedepkg "go-shiftplan/internal/sede"
	"go-shiftplan/internal/worktime"
	workspaceerrors "go-shiftplan/internal/workspace/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State is the in-memory view of the active sede.
type State struct {
	Sede               string
	Employees          []employee.EmployeeResponse
	Schedules          []schedule.ScheduleResponse
	WorkTimeConfigs    []worktime.ConfigResponse
	SelectedScheduleID string
	LastError          string
}

func (s State) clone() State {
	s.Employees = slices.Clone(s.Employees)
	s.Schedules = slices.Clone(s.Schedules)
	s.WorkTimeConfigs = slices.Clone(s.WorkTimeConfigs)
	return s
}

// Coordinator keeps State in sync with a Store. A failed call records its
// message in LastError and leaves the rest of the state untouched; a
// successful one applies the record returned by the store. Calls may come
// from several goroutines; overlapping writes resolve last write wins.
type Coordinator struct {
	mu     sync.Mutex
	store  Store
	policy hours.Policy
	state  State
	logger *zap.Logger
}

func New(store Store, policy hours.Policy, logger ...*zap.Logger) *Coordinator {
	l := zap.L().Named("workspace.coordinator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workspace.coordinator")
	}
	if policy == "" {
		policy = hours.DefaultPolicy
	}
	return &Coordinator{store: store, policy: policy, logger: l}
}

// State returns a copy of the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Coordinator) fail(op string, err error) error {
	c.logger.Warn("workspace operation failed", zap.String("op", op), zap.Error(err))
	c.mu.Lock()
	c.state.LastError = err.Error()
	c.mu.Unlock()
	return err
}

func (c *Coordinator) activeSede() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Sede == "" {
		return "", workspaceerrors.ErrNoSedeSelected
	}
	return c.state.Sede, nil
}

// SelectSede loads the employees, schedules and configs of sede and makes
// it the active one.
func (c *Coordinator) SelectSede(ctx context.Context, sede string) error {
	var (
		empls []employee.EmployeeResponse
		schs  []schedule.ScheduleResponse
		cfgs  []worktime.ConfigResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		empls, err = c.store.ListEmployees(gctx, sede)
		return err
	})
	g.Go(func() (err error) {
		schs, err = c.store.ListSchedules(gctx, sede)
		return err
	})
	g.Go(func() (err error) {
		cfgs, err = c.store.ListWorkTimeConfigs(gctx, sede)
		return err
	})
	if err := g.Wait(); err != nil {
		return c.fail("select_sede", err)
	}

	sede = canonicalSede(sede, empls, schs, cfgs)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Sede != sede {
		c.state.SelectedScheduleID = ""
	}
	c.state.Sede = sede
	c.state.Employees = empls
	c.state.Schedules = schs
	c.state.WorkTimeConfigs = cfgs
	c.state.LastError = ""

	c.logger.Info("sede selected",
		zap.String("sede", sede),
		zap.Int("employees", len(empls)),
		zap.Int("schedules", len(schs)),
	)
	return nil
}

// canonicalSede prefers the spelling the server stored over the one the
// caller typed.
func canonicalSede(
	typed string,
	empls []employee.EmployeeResponse,
	schs []schedule.ScheduleResponse,
	cfgs []worktime.ConfigResponse,
) string {
	for _, e := range empls {
		if sedepkg.Same(e.Sede, typed) {
			return e.Sede
		}
	}
	for _, s := range schs {
		if sedepkg.Same(s.Sede, typed) {
			return s.Sede
		}
	}
	for _, w := range cfgs {
		if sedepkg.Same(w.Sede, typed) {
			return w.Sede
		}
	}
	return strings.TrimSpace(typed)
}

// Reload refreshes the active sede.
func (c *Coordinator) Reload(ctx context.Context) error {
	sede, err := c.activeSede()
	if err != nil {
		return c.fail("reload", err)
	}
	return c.SelectSede(ctx, sede)
}

func (c *Coordinator) SelectSchedule(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if indexByID(c.state.Schedules, id, scheduleKey) < 0 {
		return workspaceerrors.ErrScheduleNotLoaded
	}
	c.state.SelectedScheduleID = id
	return nil
}

func (c *Coordinator) SaveEmployee(ctx context.Context, req employee.SaveEmployeeRequest) (employee.EmployeeResponse, error) {
	if req.Sede == "" {
		sede, err := c.activeSede()
		if err != nil {
			return employee.EmployeeResponse{}, c.fail("save_employee", err)
		}
		req.Sede = sede
	}

	saved, err := c.store.SaveEmployee(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, c.fail("save_employee", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if sedepkg.Same(saved.Sede, c.state.Sede) {
		c.state.Employees = upsert(c.state.Employees, saved, employeeKey)
	}
	c.state.LastError = ""
	return saved, nil
}

func (c *Coordinator) DeleteEmployee(ctx context.Context, id string) error {
	if err := c.store.DeleteEmployee(ctx, id); err != nil {
		return c.fail("delete_employee", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Employees = remove(c.state.Employees, id, employeeKey)
	c.state.LastError = ""
	return nil
}

func (c *Coordinator) SaveSchedule(ctx context.Context, req schedule.SaveScheduleRequest) (schedule.ScheduleResponse, error) {
	if req.Sede == "" {
		sede, err := c.activeSede()
		if err != nil {
			return schedule.ScheduleResponse{}, c.fail("save_schedule", err)
		}
		req.Sede = sede
	}

	saved, err := c.store.SaveSchedule(ctx, req)
	if err != nil {
		return schedule.ScheduleResponse{}, c.fail("save_schedule", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if sedepkg.Same(saved.Sede, c.state.Sede) {
		c.state.Schedules = upsert(c.state.Schedules, saved, scheduleKey)
	}
	c.state.LastError = ""
	return saved, nil
}

func (c *Coordinator) DeleteSchedule(ctx context.Context, id string) error {
	if err := c.store.DeleteSchedule(ctx, id); err != nil {
		return c.fail("delete_schedule", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Schedules = remove(c.state.Schedules, id, scheduleKey)
	if c.state.SelectedScheduleID == id {
		c.state.SelectedScheduleID = ""
	}
	c.state.LastError = ""
	return nil
}

func (c *Coordinator) SaveWorkTimeConfig(ctx context.Context, req worktime.SaveConfigRequest) (worktime.ConfigResponse, error) {
	if req.Sede == "" {
		sede, err := c.activeSede()
		if err != nil {
			return worktime.ConfigResponse{}, c.fail("save_work_time_config", err)
		}
		req.Sede = sede
	}

	saved, err := c.store.SaveWorkTimeConfig(ctx, req)
	if err != nil {
		return worktime.ConfigResponse{}, c.fail("save_work_time_config", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if sedepkg.Same(saved.Sede, c.state.Sede) {
		i := slices.IndexFunc(c.state.WorkTimeConfigs, func(w worktime.ConfigResponse) bool {
			return sedepkg.Same(w.Sede, saved.Sede) && w.Year == saved.Year
		})
		if i >= 0 {
			c.state.WorkTimeConfigs[i] = saved
		} else {
			c.state.WorkTimeConfigs = append(c.state.WorkTimeConfigs, saved)
		}
	}
	c.state.LastError = ""
	return saved, nil
}

// WorkTimeConfig looks up a loaded config. It satisfies hours.ConfigLookup.
func (c *Coordinator) WorkTimeConfig(sede string, year int) (worktime.Config, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.state.WorkTimeConfigs {
		if sedepkg.Same(w.Sede, sede) && w.Year == year {
			return w.ToEntity(), true
		}
	}
	return worktime.Config{}, false
}

// Planilla builds the report of a loaded schedule replayed over month/year.
func (c *Coordinator) Planilla(scheduleID string, month, year int) (planilla.Report, error) {
	c.mu.Lock()
	i := indexByID(c.state.Schedules, scheduleID, scheduleKey)
	if i < 0 {
		c.mu.Unlock()
		return planilla.Report{}, workspaceerrors.ErrScheduleNotLoaded
	}
	sch := c.state.Schedules[i].ToEntity()

	roster := make([]employee.Employee, len(c.state.Employees))
	for j, e := range c.state.Employees {
		roster[j] = e.ToEntity()
	}
	cfgs := make([]worktime.Config, len(c.state.WorkTimeConfigs))
	for j, w := range c.state.WorkTimeConfigs {
		cfgs[j] = w.ToEntity()
	}
	c.mu.Unlock()

	return planilla.Build(sch, roster, hours.LookupFrom(cfgs), month, year, c.policy), nil
}

func employeeKey(e employee.EmployeeResponse) string { return e.ID }

func scheduleKey(s schedule.ScheduleResponse) string { return s.ID }

func indexByID[T any](items []T, id string, key func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool { return key(item) == id })
}

// upsert replaces the item with the same id or appends it.
func upsert[T any](items []T, item T, key func(T) string) []T {
	out := slices.Clone(items)
	if i := indexByID(out, key(item), key); i >= 0 {
		out[i] = item
		return out
	}
	return append(out, item)
}

func remove[T any](items []T, id string, key func(T) string) []T {
	return slices.DeleteFunc(slices.Clone(items), func(item T) bool { return key(item) == id })
}
