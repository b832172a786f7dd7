package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-storefront/internal/data/entity"
	"movie-storefront/internal/data/repository"
	"movie-storefront/internal/dto/request"
	"movie-storefront/internal/dto/response"
	"movie-storefront/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TheaterService interface {
	GetTheaters(ctx context.Context) ([]response.TheaterResponse, error)
	GetTheaterByID(ctx context.Context, id uuid.UUID) (*response.TheaterResponse, error)
	CreateTheater(ctx context.Context, req *request.TheaterRequest) (*response.TheaterResponse, error)
	GetSeatMap(ctx context.Context, showtimeID uuid.UUID) (*response.SeatMapResponse, error)
}

type theaterService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTheaterService(repo *repository.Repository, log *zap.Logger) TheaterService {
	return &theaterService{
		repo: repo,
		log:  log,
	}
}

func (s *theaterService) GetTheaters(ctx context.Context) ([]response.TheaterResponse, error) {
	theaters, err := s.repo.Theater.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get theaters", zap.Error(err))
		return nil, fmt.Errorf("failed to get theaters")
	}

	items := make([]response.TheaterResponse, 0, len(theaters))
	for _, theater := range theaters {
		items = append(items, response.TheaterToResponse(theater))
	}

	return items, nil
}

func (s *theaterService) GetTheaterByID(ctx context.Context, id uuid.UUID) (*response.TheaterResponse, error) {
	theater, err := s.repo.Theater.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find theater", zap.Error(err), zap.String("theater_id", id.String()))
		return nil, fmt.Errorf("failed to find theater")
	}
	if theater == nil {
		return nil, fmt.Errorf("theater not found")
	}

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}

func (s *theaterService) CreateTheater(ctx context.Context, req *request.TheaterRequest) (*response.TheaterResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create theater validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Create theater
	now := time.Now()
	theater := &entity.Theater{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Location: req.Location,
		SeatRows: req.SeatRows,
		SeatCols: req.SeatCols,
	}

	if err := s.repo.Theater.Create(ctx, theater); err != nil {
		s.log.Error("Failed to create theater", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create theater")
	}

	// 3. Generate seat grid
	seats := generateSeats(theater, req)
	if err := s.repo.Seat.CreateBatch(ctx, seats); err != nil {
		s.log.Error("Failed to create seats", zap.Error(err), zap.String("theater_id", theater.ID.String()))
		return nil, fmt.Errorf("failed to create seats")
	}

	s.log.Info("Theater created",
		zap.String("theater_id", theater.ID.String()),
		zap.String("name", theater.Name),
		zap.Int("seats", len(seats)))

	resp := response.TheaterToResponse(theater)
	return &resp, nil
}

// generateSeats lays out the grid back to front: the last row is VIP and the
// back third is PREMIUM when those tiers have a price, everything else is
// STANDARD.
func generateSeats(theater *entity.Theater, req *request.TheaterRequest) []*entity.Seat {
	now := time.Now()
	seats := make([]*entity.Seat, 0, theater.SeatRows*theater.SeatCols)

	premiumFrom := theater.SeatRows - theater.SeatRows/3
	for row := 0; row < theater.SeatRows; row++ {
		tier := entity.SeatTierStandard
		price := req.StandardPrice

		switch {
		case req.VIPPrice > 0 && row == theater.SeatRows-1:
			tier = entity.SeatTierVIP
			price = req.VIPPrice
		case req.PremiumPrice > 0 && row >= premiumFrom:
			tier = entity.SeatTierPremium
			price = req.PremiumPrice
		}

		rowLabel := string(rune('A' + row))
		for col := 1; col <= theater.SeatCols; col++ {
			seats = append(seats, &entity.Seat{
				Base: entity.Base{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				TheaterID:  theater.ID,
				SeatRow:    rowLabel,
				SeatNumber: col,
				Tier:       tier,
				Price:      price,
			})
		}
	}

	return seats
}

func (s *theaterService) GetSeatMap(ctx context.Context, showtimeID uuid.UUID) (*response.SeatMapResponse, error) {
	// 1. Find showtime
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		s.log.Error("Failed to find showtime", zap.Error(err), zap.String("showtime_id", showtimeID.String()))
		return nil, fmt.Errorf("failed to find showtime")
	}
	if showtime == nil {
		return nil, fmt.Errorf("showtime not found")
	}

	// 2. Find theater & seats
	theater, err := s.repo.Theater.FindByID(ctx, showtime.TheaterID)
	if err != nil {
		s.log.Error("Failed to find theater", zap.Error(err), zap.String("theater_id", showtime.TheaterID.String()))
		return nil, fmt.Errorf("failed to find theater")
	}
	if theater == nil {
		return nil, fmt.Errorf("theater not found")
	}

	seats, err := s.repo.Seat.FindByTheaterID(ctx, theater.ID)
	if err != nil {
		s.log.Error("Failed to get seats", zap.Error(err), zap.String("theater_id", theater.ID.String()))
		return nil, fmt.Errorf("failed to get seats")
	}

	// 3. Load assignment history for the whole theater
	assignments, err := s.repo.BookingSeat.FindAssignmentsByTheater(ctx, theater.ID)
	if err != nil {
		s.log.Error("Failed to get seat assignments", zap.Error(err), zap.String("theater_id", theater.ID.String()))
		return nil, fmt.Errorf("failed to get seat assignments")
	}

	withHistory := make([]*entity.SeatWithAssignments, 0, len(seats))
	for _, seat := range seats {
		withHistory = append(withHistory, &entity.SeatWithAssignments{
			Seat:        *seat,
			Assignments: assignments[seat.ID],
		})
	}

	// 4. Resolve availability for this showtime only
	availability := ResolveAvailability(withHistory, showtimeID)

	rows := make(map[string][]response.SeatResponse)
	for _, sa := range availability {
		rows[sa.Seat.SeatRow] = append(rows[sa.Seat.SeatRow], response.SeatToResponse(sa.Seat, sa.IsBooked, sa.Holds))
	}

	return &response.SeatMapResponse{
		Theater:    response.TheaterToResponse(theater),
		ShowtimeID: showtimeID.String(),
		Rows:       rows,
	}, nil
}
