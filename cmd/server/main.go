package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/m1ron1k/taskflow/internal/api"
	"github.com/m1ron1k/taskflow/internal/infrastructure/auth"
	"github.com/m1ron1k/taskflow/internal/infrastructure/client"
	"github.com/m1ron1k/taskflow/internal/repository"
	"github.com/m1ron1k/taskflow/internal/usecase"
	"github.com/m1ron1k/taskflow/internal/worker"
)

func main() {
	var wg sync.WaitGroup

	dbCfg := client.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "taskflow"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	rabbitMQURL := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		getEnv("RABBITMQ_USER", "guest"),
		getEnv("RABBITMQ_PASSWORD", "guest"),
		getEnv("RABBITMQ_HOST", "localhost"),
		getEnv("RABBITMQ_PORT", "5672"))

	// Запускаем миграции
	if err := runMigrations(dbCfg.URL()); err != nil {
		log.Fatal("❌ Ошибка миграций:", err)
	}

	// Подключаемся к БД
	db, err := client.NewPostgresClient(dbCfg)
	if err != nil {
		log.Fatal("❌ Ошибка подключения к БД:", err)
	}
	defer db.Close()
	fmt.Println("✅ Подключение к БД установлено")

	// Подключаемся к RabbitMQ
	rabbitMQ, err := client.NewRabbitMQClient(rabbitMQURL)
	if err != nil {
		log.Fatal("❌ Ошибка подключения к RabbitMQ:", err)
	}
	defer rabbitMQ.Close()
	fmt.Println("✅ Подключение к RabbitMQ установлено")

	// Инициализируем репозитории
	taskRepo := repository.NewTaskRepository(db.Pool)
	userRepo := repository.NewUserRepository(db.Pool)

	// Инициализируем сервисы
	jwtManager := auth.NewJWTManager()
	taskService := usecase.NewTaskService(taskRepo, rabbitMQ)
	authService := usecase.NewAuthService(userRepo, auth.NewPasswordManager(), jwtManager)

	// Запускаем воркер уведомлений
	notifyWorker := worker.NewNotifyWorker(rabbitMQURL, rabbitMQ.GetQueueName())
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Println("Запуск Notify Worker...")
		notifyWorker.Start(workerCtx)
	}()

	// Запускаем HTTP сервер
	port := getEnv("PORT", "3000")
	router := api.NewRouter(taskService, authService, jwtManager, db)
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		fmt.Printf("Запуск HTTP сервера на порту %s...\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ HTTP server error: %v", err)
		}
	}()

	fmt.Println("✅ Сервис готов к работе!")
	fmt.Printf(" API: http://localhost:%s/api/tasks\n", port)
	fmt.Printf(" Health: http://localhost:%s/health\n", port)
	fmt.Println("Для остановки нажмите Ctrl+C")

	waitForShutdown(server, workerCancel)
	wg.Wait()
}

func waitForShutdown(server *http.Server, workerCancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("Завершение работы...")

	workerCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Ошибка остановки сервера: %v", err)
	}

	fmt.Println("✅ Приложение завершено корректно")
}

func runMigrations(dbURL string) error {
	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		return fmt.Errorf("ошибка создания мигратора: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("ошибка выполнения миграций: %w", err)
	}

	fmt.Println("✅ Миграции выполнены успешно")
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
