package mocks

//go:generate mockgen -destination=./mock_library.go -package=mocks github.com/rxtech-lab/argo-screener/internal/indicator Library
//go:generate mockgen -destination=./mock_datasource.go -package=mocks github.com/rxtech-lab/argo-screener/internal/datasource DataSource
