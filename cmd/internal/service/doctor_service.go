package service

import (
	"context"
	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"doctorsportal/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type DoctorRequest struct {
	Name      string `json:"name" validate:"required,max=128"`
	Email     string `json:"email" validate:"omitempty,email"`
	Specialty string `json:"specialty" validate:"max=128"`
	Image     string `json:"img" validate:"omitempty,url"`
}

type DeleteResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type DefaultDoctorService struct {
	DoctorRepo DoctorRepository
	Validate   *validator.Validate
}

func NewDoctorService(doctorRepo DoctorRepository, validate *validator.Validate) *DefaultDoctorService {
	return &DefaultDoctorService{DoctorRepo: doctorRepo, Validate: validate}
}

func (d *DefaultDoctorService) GetDoctors(ctx context.Context) ([]*entity.Doctor, apierror.ErrorResponse) {
	doctors, err := d.DoctorRepo.FindAll(ctx)
	if err != nil {
		log.Errorf("failed to fetch doctors: %v", err)
		return nil, apierror.InternalServerError
	}
	return doctors, nil
}

func (d *DefaultDoctorService) CreateDoctor(ctx context.Context, req *DoctorRequest) (*InsertResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := d.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	doctor := &entity.Doctor{
		Name:      req.Name,
		Email:     req.Email,
		Specialty: req.Specialty,
		Image:     req.Image,
	}

	if err := d.DoctorRepo.Save(ctx, doctor); err != nil {
		log.Errorf("failed to save doctor: %v", err)
		return nil, apierror.InternalServerError
	}
	return &InsertResponse{Acknowledged: true, InsertedID: doctor.ID}, nil
}

func (d *DefaultDoctorService) DeleteDoctor(ctx context.Context, rawID string) (*DeleteResponse, apierror.ErrorResponse) {
	id, err := entity.ParseID(rawID)
	if err != nil {
		return nil, apierror.InvalidIdentifierError
	}

	n, err := d.DoctorRepo.Delete(ctx, id)
	if err != nil {
		log.Errorf("failed to delete doctor %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return &DeleteResponse{Acknowledged: true, DeletedCount: n}, nil
}
