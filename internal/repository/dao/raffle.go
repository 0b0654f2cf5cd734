package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Raffle struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:80;not null"`
	IsPlayed     bool   `gorm:"not null;default:false"`
	Price        string `gorm:"not null"`
	HasQuestions bool   `gorm:"not null;default:false"`

	PricePhotoURL      string
	PricePhotoPublicID string

	WinnerID   *uint        `gorm:"index"`
	Winner     *Participant `gorm:"foreignKey:WinnerID;constraint:OnDelete:SET NULL"`
	WinnerName *string
	EventsID   uint       `gorm:"index;not null"`
	Questions  []Question `gorm:"foreignKey:RafflesID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Question struct {
	ID            uint   `gorm:"primaryKey"`
	Question      string `gorm:"not null"`
	Option1       string `gorm:"not null"`
	Option2       string `gorm:"not null"`
	Option3       string `gorm:"not null"`
	Option4       string `gorm:"not null"`
	CorrectOption uint8  `gorm:"not null"`
	RafflesID     uint   `gorm:"index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RaffleDAO struct {
	db *gorm.DB
}

func NewRaffleDAO(db *gorm.DB) *RaffleDAO {
	return &RaffleDAO{
		db: db,
	}
}

func (d *RaffleDAO) FindAll(ctx context.Context) ([]Raffle, error) {
	var raffles []Raffle

	result := d.db.WithContext(ctx).Order("id").Find(&raffles)
	if result.Error != nil {
		return nil, queryError("dao.RaffleDAO.FindAll", result.Error)
	}

	return raffles, nil
}

func (d *RaffleDAO) FindByID(ctx context.Context, id uint) (Raffle, error) {
	var raffle Raffle

	result := d.db.WithContext(ctx).First(&raffle, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Raffle{}, ErrRaffleNotFound
		}

		return Raffle{}, queryError("dao.RaffleDAO.FindByID", result.Error)
	}

	return raffle, nil
}

func (d *RaffleDAO) Insert(ctx context.Context, raffle Raffle) (Raffle, error) {
	result := d.db.WithContext(ctx).Create(&raffle)
	if result.Error != nil {
		return Raffle{}, queryError("dao.RaffleDAO.Insert", result.Error)
	}

	return raffle, nil
}

func (d *RaffleDAO) Update(ctx context.Context, raffle Raffle) (Raffle, error) {
	result := d.db.WithContext(ctx).Model(&raffle).Select("*").Omit("ID", "CreatedAt", "Winner", "Questions").Updates(&raffle)
	if result.Error != nil {
		return Raffle{}, queryError("dao.RaffleDAO.Update", result.Error)
	}
	if result.RowsAffected == 0 {
		return Raffle{}, ErrRaffleNotFound
	}

	return raffle, nil
}

func (d *RaffleDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Raffle{}, id)
	if result.Error != nil {
		return queryError("dao.RaffleDAO.Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRaffleNotFound
	}

	return nil
}
