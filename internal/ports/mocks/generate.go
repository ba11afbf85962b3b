//go:generate mockgen -source=../catalog_repository.go      -destination=./mock_catalog_repository.go      -package=mocks
//go:generate mockgen -source=../reservation_repository.go  -destination=./mock_reservation_repository.go  -package=mocks
//go:generate mockgen -source=../settings_repository.go     -destination=./mock_settings_repository.go     -package=mocks
//go:generate mockgen -source=../notification_repository.go -destination=./mock_notification_repository.go -package=mocks
//go:generate mockgen -source=../kv_storage.go              -destination=./mock_kv_storage.go              -package=mocks
//go:generate mockgen -source=../event_publisher.go         -destination=./mock_event_publisher.go         -package=mocks
//go:generate mockgen -source=../catalog_service.go         -destination=./mock_catalog_service.go         -package=mocks
//go:generate mockgen -source=../registry_service.go        -destination=./mock_registry_service.go        -package=mocks

package mocks
