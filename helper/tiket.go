package helper

import (
	"log"
	"time"

	"tiket_manager/constants"
	"tiket_manager/database"
	"tiket_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var tiketScheduler gocron.Scheduler

// AutoUpdateTiketStatus menutup tiket yang tanggal acaranya sudah lewat
func AutoUpdateTiketStatus() {
	log.Println("[CRON] AutoUpdateTiketStatus triggered")

	db := database.DB
	loc := time.FixedZone("WIB", 7*3600)
	today := time.Now().In(loc).Truncate(24 * time.Hour)

	res := db.Model(&model.Tiket{}).
		Where("tanggal_acara < ? AND status = ?", today, constants.TIKET_TERSEDIA).
		Update("status", constants.TIKET_SELESAI)
	if res.Error != nil {
		log.Printf("update status tiket kadaluarsa: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("%d tiket ditandai %s", res.RowsAffected, constants.TIKET_SELESAI)
	}
}

func StartTiketStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("WIB", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	tiketScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateTiketStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Tiket status scheduler started (00:05 WIB)")
}

func StopTiketStatusScheduler() {
	if tiketScheduler != nil {
		if err := tiketScheduler.Shutdown(); err != nil {
			log.Printf("shutdown tiket scheduler: %v", err)
		}
	}
}
