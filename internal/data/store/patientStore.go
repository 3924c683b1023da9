package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/ramanshrivastava/build-ai-agents/internal/config"
	"github.com/ramanshrivastava/build-ai-agents/internal/data/redisStore"
	"github.com/ramanshrivastava/build-ai-agents/internal/domain/patientModel"
	"github.com/ramanshrivastava/build-ai-agents/pkg/logger_i"
)

// PatientStore serves the records briefings are generated from.
type PatientStore interface {
	GetPatient(ctx context.Context, id int) (patientModel.Patient, bool)
	ListPatients(ctx context.Context) ([]patientModel.Patient, error)
	SavePatient(ctx context.Context, patient patientModel.Patient) error
}

func patientKey(id int) string {
	return fmt.Sprintf("patient:%d", id)
}

type RedisPatientStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisPatientStore returns nil when redis is unreachable; main falls
// back to the seeded in-memory store.
func GetRedisPatientStore(ctx context.Context) *RedisPatientStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisPatientStore)
	if inner == nil {
		return nil
	}
	return &RedisPatientStore{
		store:  inner,
		logger: logger_i.NewLogger("PatientStore"),
	}
}

func (s *RedisPatientStore) SavePatient(ctx context.Context, patient patientModel.Patient) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "patientId", patient.ID)

	data, err := json.Marshal(patient)
	if err != nil {
		return err
	}
	err = s.store.Set(ctx, patientKey(patient.ID), data, config.RedisPatientStoreTTL)
	if err == nil {
		log.Debug("patient saved")
	}
	return err
}

func (s *RedisPatientStore) GetPatient(ctx context.Context, id int) (patientModel.Patient, bool) {
	var patient patientModel.Patient
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "patientId", id)

	val, err := s.store.Get(ctx, patientKey(id))
	if s.store.IsNil(err) {
		return patient, false
	} else if err != nil {
		log.Error("error reading patient", "error", err)
		return patient, false
	}

	if err := json.Unmarshal([]byte(val), &patient); err != nil {
		log.Error("corrupt patient record", "error", err)
		return patient, false
	}
	return patient, true
}

func (s *RedisPatientStore) ListPatients(ctx context.Context) ([]patientModel.Patient, error) {
	keys, err := s.store.Keys(ctx, "patient:*")
	if err != nil {
		return nil, err
	}

	patients := make([]patientModel.Patient, 0, len(keys))
	for _, key := range keys {
		val, err := s.store.Get(ctx, key)
		if err != nil {
			continue
		}
		var patient patientModel.Patient
		if err := json.Unmarshal([]byte(val), &patient); err != nil {
			s.logger.Error("skipping corrupt patient record", "key", key, "error", err)
			continue
		}
		patients = append(patients, patient)
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}

// TestPatientStore wraps a test redis store.
func TestPatientStore(inner *redisStore.Store) *RedisPatientStore {
	return &RedisPatientStore{
		store:  inner,
		logger: logger_i.NewLogger("test patient store"),
	}
}

// InMemoryPatientStore backs development and test runs without redis.
type InMemoryPatientStore struct {
	mu       sync.RWMutex
	patients map[int]patientModel.Patient
}

func NewInMemoryPatientStore(seed []patientModel.Patient) *InMemoryPatientStore {
	patients := make(map[int]patientModel.Patient, len(seed))
	for _, p := range seed {
		patients[p.ID] = p
	}
	return &InMemoryPatientStore{patients: patients}
}

func (s *InMemoryPatientStore) GetPatient(ctx context.Context, id int) (patientModel.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	patient, ok := s.patients[id]
	return patient, ok
}

func (s *InMemoryPatientStore) ListPatients(ctx context.Context) ([]patientModel.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	patients := make([]patientModel.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		patients = append(patients, p)
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}

func (s *InMemoryPatientStore) SavePatient(ctx context.Context, patient patientModel.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients[patient.ID] = patient
	return nil
}
