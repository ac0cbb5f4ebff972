package service

import (
	"context"
	"testing"

	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/apperr"
	"github.com/Ubaidalizai/Eye-HMS-sub002/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPatient_AssignsSequentialNumbers(t *testing.T) {
	st := newMemState()
	svc := NewPatientService(&memPatientRepo{st: st})

	first, err := svc.Register(context.Background(), dto.CreatePatientRequest{Name: "Ahmad"})
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), dto.CreatePatientRequest{Name: "Zahra"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.RegistrationNo)
	assert.Equal(t, 2, second.RegistrationNo)
}

func TestPatientGet_NotFound(t *testing.T) {
	st := newMemState()
	svc := NewPatientService(&memPatientRepo{st: st})

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ItemNotFound(""))
}

func TestPatientUpdate_KeepsRegistrationNo(t *testing.T) {
	st := newMemState()
	svc := NewPatientService(&memPatientRepo{st: st})

	created, err := svc.Register(context.Background(), dto.CreatePatientRequest{
		Name: "Ahmad", Age: 40,
	})
	require.NoError(t, err)

	newAge := 41
	updated, err := svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdatePatientRequest{
		Phone: "0700123456",
		Age:   &newAge,
	})
	require.NoError(t, err)
	assert.Equal(t, created.RegistrationNo, updated.RegistrationNo)
	assert.Equal(t, 41, updated.Age)
	assert.Equal(t, "Ahmad", updated.Name, "unset fields stay put")
	assert.Equal(t, "0700123456", updated.Phone)
}
