package main

import (
	"pawtrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ServiceProviderModel{},
		model.UserProviderAssociationModel{},
		model.ProviderPhoneModel{},
		model.WorkingHoursModel{},
		model.ServiceProviderLocationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
