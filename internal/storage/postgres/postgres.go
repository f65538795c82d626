package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"strings"

	"spotBooker/internal/config"
	"spotBooker/internal/models"
	"spotBooker/internal/reservation"
	"spotBooker/internal/storage"

	"github.com/lib/pq"
)

//go:embed schema.sql
var schema string

type Storage struct {
	DB     *sql.DB
	engine *reservation.Engine
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return New(db, reservation.New()), nil
}

func New(db *sql.DB, engine *reservation.Engine) *Storage {
	return &Storage{DB: db, engine: engine}
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Migrate applies the embedded schema. Every statement in it is idempotent.
func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}

const spotColumns = `s.id, s.owner_id, s.address, s.city, s.state, s.country, s.lat, s.lng, s.name, s.description, s.price, s.created_at, s.updated_at`

func spotFields(spot *models.Spot) []any {
	return []any{
		&spot.ID,
		&spot.OwnerID,
		&spot.Address,
		&spot.City,
		&spot.State,
		&spot.Country,
		&spot.Lat,
		&spot.Lng,
		&spot.Name,
		&spot.Description,
		&spot.Price,
		&spot.CreatedAt,
		&spot.UpdatedAt,
	}
}

func (s *Storage) CreateSpot(ctx context.Context, spot models.Spot) (*models.Spot, error) {
	const op = "storage.postgres.CreateSpot"

	query := `
		INSERT INTO spots (owner_id, address, city, state, country, lat, lng, name, description, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := s.DB.QueryRowContext(ctx, query,
		spot.OwnerID,
		spot.Address,
		spot.City,
		spot.State,
		spot.Country,
		spot.Lat,
		spot.Lng,
		spot.Name,
		spot.Description,
		spot.Price,
	).Scan(&spot.ID, &spot.CreatedAt, &spot.UpdatedAt)
	if err != nil {
		if missing := missingReference(err); missing != nil {
			return nil, fmt.Errorf("%s: %w", op, missing)
		}
		return nil, fmt.Errorf("%s: failed to create spot: %w", op, err)
	}

	return &spot, nil
}

func (s *Storage) GetSpotDetails(ctx context.Context, id int) (*models.SpotDetails, error) {
	const op = "storage.postgres.GetSpotDetails"

	query := `
		SELECT ` + spotColumns + `, u.id, u.first_name, u.last_name, COUNT(r.id), COALESCE(AVG(r.stars), 0)
		FROM spots s
		JOIN users u ON u.id = s.owner_id
		LEFT JOIN reviews r ON r.spot_id = s.id
		WHERE s.id = $1
		GROUP BY s.id, u.id`

	var (
		details models.SpotDetails
		owner   models.User
		avg     float64
	)

	dest := append(spotFields(&details.Spot), &owner.ID, &owner.FirstName, &owner.LastName, &details.NumReviews, &avg)

	err := s.DB.QueryRowContext(ctx, query, id).Scan(dest...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrSpotNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get spot: %w", op, err)
	}

	details.Owner = &owner
	details.AvgStarRating = math.Round(avg*100) / 100

	return &details, nil
}

// ListSpots returns one page of spots matching the filter, each with its
// average star rating.
func (s *Storage) ListSpots(ctx context.Context, filter models.SpotFilter) ([]models.SpotSummary, error) {
	const op = "storage.postgres.ListSpots"

	var (
		conds []string
		args  []any
	)

	bound := func(cond string, v *float64) {
		if v == nil {
			return
		}
		args = append(args, *v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	bound("s.lat >= $%d", filter.MinLat)
	bound("s.lat <= $%d", filter.MaxLat)
	bound("s.lng >= $%d", filter.MinLng)
	bound("s.lng <= $%d", filter.MaxLng)
	bound("s.price >= $%d", filter.MinPrice)
	bound("s.price <= $%d", filter.MaxPrice)

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, filter.Size, filter.Offset())
	page := fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	spots, err := s.listSpotSummaries(ctx, where, page, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return spots, nil
}

func (s *Storage) GetSpotsByOwner(ctx context.Context, ownerID int) ([]models.SpotSummary, error) {
	const op = "storage.postgres.GetSpotsByOwner"

	spots, err := s.listSpotSummaries(ctx, " WHERE s.owner_id = $1", "", ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return spots, nil
}

func (s *Storage) listSpotSummaries(ctx context.Context, where, page string, args ...any) ([]models.SpotSummary, error) {
	query := `
		SELECT ` + spotColumns + `, COALESCE(AVG(r.stars), 0)
		FROM spots s
		LEFT JOIN reviews r ON r.spot_id = s.id` + where + `
		GROUP BY s.id
		ORDER BY s.id ASC` + page

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get spots: %w", err)
	}
	defer rows.Close()

	spots := make([]models.SpotSummary, 0)
	for rows.Next() {
		var (
			spot models.SpotSummary
			avg  float64
		)

		if err = rows.Scan(append(spotFields(&spot.Spot), &avg)...); err != nil {
			return nil, fmt.Errorf("failed to scan spot: %w", err)
		}

		spot.AvgRating = math.Round(avg*100) / 100
		spots = append(spots, spot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spots: %w", err)
	}

	return spots, nil
}

// UpdateSpot replaces the editable fields of spot.ID. Only the owner may edit.
func (s *Storage) UpdateSpot(ctx context.Context, userID int, spot models.Spot) (*models.Spot, error) {
	const op = "storage.postgres.UpdateSpot"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	current, err := s.getSpot(ctx, tx, spot.ID, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if current.OwnerID != userID {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotSpotOwner)
	}

	query := `
		UPDATE spots
		SET address = $2, city = $3, state = $4, country = $5, lat = $6, lng = $7,
			name = $8, description = $9, price = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING owner_id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, query,
		spot.ID,
		spot.Address,
		spot.City,
		spot.State,
		spot.Country,
		spot.Lat,
		spot.Lng,
		spot.Name,
		spot.Description,
		spot.Price,
	).Scan(&spot.OwnerID, &spot.CreatedAt, &spot.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update spot: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return &spot, nil
}

// DeleteSpot removes the spot with its bookings and reviews. Only the owner
// may delete.
func (s *Storage) DeleteSpot(ctx context.Context, spotID, userID int) error {
	const op = "storage.postgres.DeleteSpot"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	current, err := s.getSpot(ctx, tx, spotID, true)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if current.OwnerID != userID {
		return fmt.Errorf("%s: %w", op, storage.ErrNotSpotOwner)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM spots WHERE id = $1`, spotID); err != nil {
		return fmt.Errorf("%s: failed to delete spot: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return nil
}

func (s *Storage) getSpot(ctx context.Context, q querier, id int, lock bool) (*models.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots s WHERE s.id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var spot models.Spot

	err := q.QueryRowContext(ctx, query, id).Scan(spotFields(&spot)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSpotNotFound
		}
		return nil, fmt.Errorf("failed to get spot: %w", err)
	}

	return &spot, nil
}

func (s *Storage) listBookings(ctx context.Context, q querier, spotID int) ([]models.Booking, error) {
	query := `
		SELECT b.id, b.spot_id, b.user_id, b.start_date, b.end_date, b.created_at, b.updated_at, u.first_name, u.last_name
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE b.spot_id = $1
		ORDER BY b.start_date ASC`

	rows, err := q.QueryContext(ctx, query, spotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var (
			booking models.Booking
			user    models.User
		)

		err = rows.Scan(
			&booking.ID,
			&booking.SpotID,
			&booking.UserID,
			&booking.StartDate.Time,
			&booking.EndDate.Time,
			&booking.CreatedAt,
			&booking.UpdatedAt,
			&user.FirstName,
			&user.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		booking.StartDate = models.DateOf(booking.StartDate.Time)
		booking.EndDate = models.DateOf(booking.EndDate.Time)
		user.ID = booking.UserID
		booking.User = &user

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// CreateBooking locks the spot row, reads its bookings, asks the reservation
// engine for a decision and inserts the accepted booking, all in one
// transaction. A rejected proposal is returned as *reservation.Rejection.
func (s *Storage) CreateBooking(ctx context.Context, spotID, userID int, start, end models.Date) (*models.Booking, error) {
	const op = "storage.postgres.CreateBooking"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	spot, err := s.getSpot(ctx, tx, spotID, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	existing, err := s.listBookings(ctx, tx, spotID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	decision, err := s.engine.Propose(spot, userID, start, end, existing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !decision.Accepted() {
		return nil, fmt.Errorf("%s: %w", op, decision.Rejection)
	}

	booking := decision.Booking

	insertQuery := `
		INSERT INTO bookings (spot_id, user_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(ctx, insertQuery, booking.SpotID, booking.UserID, booking.StartDate.Time, booking.EndDate.Time).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isViolation(err, "exclusion_violation") {
			return nil, fmt.Errorf("%s: %w", op, &reservation.Rejection{
				Kind:    reservation.KindDateConflict,
				Message: "spot is already booked for the specified dates",
				Fields: map[string]string{
					reservation.FieldStartDate: "start date conflicts with an existing booking",
					reservation.FieldEndDate:   "end date conflicts with an existing booking",
				},
			})
		}
		if missing := missingReference(err); missing != nil {
			return nil, fmt.Errorf("%s: %w", op, missing)
		}
		return nil, fmt.Errorf("%s: failed to create booking: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return &booking, nil
}

func (s *Storage) GetSpotBookings(ctx context.Context, spotID int) (*models.Spot, []models.Booking, error) {
	const op = "storage.postgres.GetSpotBookings"

	spot, err := s.getSpot(ctx, s.DB, spotID, false)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	bookings, err := s.listBookings(ctx, s.DB, spotID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return spot, bookings, nil
}

func (s *Storage) CreateReview(ctx context.Context, spotID, userID int, text string, stars int) (*models.Review, error) {
	const op = "storage.postgres.CreateReview"

	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM spots WHERE id = $1)`, spotID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to check spot: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrSpotNotFound)
	}

	review := models.Review{
		SpotID: spotID,
		UserID: userID,
		Review: text,
		Stars:  stars,
	}

	query := `
		INSERT INTO reviews (spot_id, user_id, review, stars)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err = s.DB.QueryRowContext(ctx, query, spotID, userID, text, stars).
		Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		if isViolation(err, "unique_violation") {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrReviewExists)
		}
		if missing := missingReference(err); missing != nil {
			return nil, fmt.Errorf("%s: %w", op, missing)
		}
		return nil, fmt.Errorf("%s: failed to create review: %w", op, err)
	}

	return &review, nil
}

func (s *Storage) GetSpotReviews(ctx context.Context, spotID int) ([]models.Review, error) {
	const op = "storage.postgres.GetSpotReviews"

	if _, err := s.getSpot(ctx, s.DB, spotID, false); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT r.id, r.spot_id, r.user_id, r.review, r.stars, r.created_at, r.updated_at, u.first_name, u.last_name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.spot_id = $1
		ORDER BY r.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, spotID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get reviews: %w", op, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var (
			review models.Review
			user   models.User
		)

		err = rows.Scan(
			&review.ID,
			&review.SpotID,
			&review.UserID,
			&review.Review,
			&review.Stars,
			&review.CreatedAt,
			&review.UpdatedAt,
			&user.FirstName,
			&user.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan review: %w", op, err)
		}

		user.ID = review.UserID
		review.User = &user

		reviews = append(reviews, review)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating reviews: %w", op, err)
	}

	return reviews, nil
}

func isViolation(err error, name string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == name
}

// missingReference turns a foreign key violation into the sentinel of the
// row that was missing: the spot for *_spot_id_fkey, the user otherwise.
func missingReference(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code.Name() != "foreign_key_violation" {
		return nil
	}

	if strings.HasSuffix(pqErr.Constraint, "spot_id_fkey") {
		return storage.ErrSpotNotFound
	}

	return storage.ErrUserNotFound
}
