// Command seed fills a development database with Ukrainian demo content:
// home page, contacts, pricing, cafe menu, offers and two news items that
// carry one survey of each shape.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedOptions struct {
	mongoURI string
	database string
	drop     bool
}

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags)
	_ = godotenv.Load()

	opts := seedOptions{}
	flag.StringVar(&opts.mongoURI, "mongo-uri", envOrDefault("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection string")
	flag.StringVar(&opts.database, "db", envOrDefault("MONGO_DB", "zhyrafyk"), "database name")
	flag.BoolVar(&opts.drop, "drop", false, "drop seeded collections before inserting")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.mongoURI))
	if err != nil {
		logger.Fatalf("mongodb connect failed: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("mongo disconnect: %v", err)
		}
	}()

	db := client.Database(opts.database)

	if opts.drop {
		for _, name := range []string{"home", "contacts", "price_categories", "prices", "cafe", "offers", "news"} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				logger.Fatalf("drop %s failed: %v", name, err)
			}
		}
		logger.Printf("dropped seeded collections")
	}

	if err := seedHome(ctx, db); err != nil {
		logger.Fatalf("seed home failed: %v", err)
	}
	if err := seedContacts(ctx, db); err != nil {
		logger.Fatalf("seed contacts failed: %v", err)
	}
	if err := seedPricing(ctx, db); err != nil {
		logger.Fatalf("seed pricing failed: %v", err)
	}
	if err := seedCafe(ctx, db); err != nil {
		logger.Fatalf("seed cafe failed: %v", err)
	}
	if err := seedOffers(ctx, db); err != nil {
		logger.Fatalf("seed offers failed: %v", err)
	}
	if err := seedNews(ctx, db); err != nil {
		logger.Fatalf("seed news failed: %v", err)
	}

	logger.Printf("seed complete: database %s", opts.database)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedHome(ctx context.Context, db *mongo.Database) error {
	doc := bson.M{
		"title":        "Мотузковий парк «Жирафик»",
		"description":  "Активний відпочинок для всієї родини просто неба.",
		"features":     []string{"Траси для дітей від 4 років", "Сертифіковане спорядження", "Інструктори поруч на кожній трасі"},
		"images":       []string{},
		"workingHours": "Щодня 10:00 – 20:00",
		"address":      "м. Київ, парк «Перемога»",
		"phone":        "+380 67 000 00 00",
	}
	_, err := db.Collection("home").ReplaceOne(ctx, bson.D{}, doc, options.Replace().SetUpsert(true))
	return err
}

func seedContacts(ctx context.Context, db *mongo.Database) error {
	doc := bson.M{
		"phone":        "+380 67 000 00 00",
		"email":        "hello@zhyrafyk.ua",
		"address":      "м. Київ, парк «Перемога»",
		"workingHours": "Щодня 10:00 – 20:00",
		"socialMedia": bson.M{
			"instagram": "https://instagram.com/zhyrafyk.park",
			"telegram":  "https://t.me/zhyrafyk_park",
		},
	}
	_, err := db.Collection("contacts").ReplaceOne(ctx, bson.D{}, doc, options.Replace().SetUpsert(true))
	return err
}

func seedPricing(ctx context.Context, db *mongo.Database) error {
	categories := []any{
		bson.M{"key": "kids", "label": "Дитячі траси", "icon": "🧒", "order": 1},
		bson.M{"key": "adult", "label": "Дорослі траси", "icon": "🧗", "order": 2},
		bson.M{"key": "group", "label": "Групові пакети", "icon": "👥", "order": 3},
	}
	if _, err := db.Collection("price_categories").InsertMany(ctx, categories); err != nil {
		return err
	}

	prices := []any{
		bson.M{"name": "Дитяча траса «Старт»", "price": "250 грн", "description": "Для дітей 4–8 років", "duration": "1 година", "category": "kids"},
		bson.M{"name": "Траса «Екстрим»", "price": "400 грн", "description": "Висота до 12 метрів", "duration": "1.5 години", "category": "adult"},
		bson.M{"name": "День народження", "price": "від 3000 грн", "description": "Траси, анімація та альтанка для компанії до 10 дітей", "category": "group"},
	}
	_, err := db.Collection("prices").InsertMany(ctx, prices)
	return err
}

func seedCafe(ctx context.Context, db *mongo.Database) error {
	items := []any{
		bson.M{"name": "Лимонад", "description": "Домашній, з м'ятою", "price": 60.0, "category": "Напої"},
		bson.M{"name": "Хот-дог", "description": "Класичний", "price": 95.0, "category": "Їжа"},
		bson.M{"name": "Морозиво", "description": "Ванільне або шоколадне", "price": 45.0, "category": "Десерти"},
	}
	_, err := db.Collection("cafe").InsertMany(ctx, items)
	return err
}

func seedOffers(ctx context.Context, db *mongo.Database) error {
	now := time.Now().UTC()
	end := now.AddDate(0, 1, 0)
	offers := []any{
		bson.M{
			"title":       "Знижка 20% у будні",
			"description": "На всі дорослі траси з понеділка по четвер.",
			"active":      true,
			"startDate":   now,
			"endDate":     end,
			"priority":    10,
			"recommended": true,
			"icon":        "🎟️",
		},
		bson.M{
			"title":       "Сімейний квиток",
			"description": "Двоє дорослих і двоє дітей за ціною трьох квитків.",
			"active":      true,
			"priority":    5,
		},
	}
	_, err := db.Collection("offers").InsertMany(ctx, offers)
	return err
}

func seedNews(ctx context.Context, db *mongo.Database) error {
	now := time.Now().UTC()

	choiceSurvey := bson.M{
		"question":      "Яку нову трасу ви хотіли б бачити в парку?",
		"endDate":       now.AddDate(0, 0, 14),
		"allowMultiple": false,
		"options": []bson.M{
			{"id": uuid.NewString(), "text": "Нічна траса з підсвіткою"},
			{"id": uuid.NewString(), "text": "Водна перешкода"},
			{"id": uuid.NewString(), "text": "Траса для наймолодших"},
		},
	}

	freeFormSurvey := bson.M{
		"question": "Розкажіть про свій візит",
		"endDate":  now.AddDate(0, 0, 30),
		"fields": []bson.M{
			{"id": uuid.NewString(), "label": "Що сподобалось найбільше?"},
			{"id": uuid.NewString(), "label": "Що варто покращити?"},
		},
	}

	items := []any{
		bson.M{
			"title":   "Обираємо нову трасу разом",
			"content": "Ми плануємо розширення парку і хочемо почути вашу думку.",
			"date":    now,
			"type":    "news",
			"survey":  choiceSurvey,
		},
		bson.M{
			"title":   "Сезон відкрито!",
			"content": "Чекаємо на вас щодня з 10:00. Поділіться враженнями після візиту.",
			"date":    now.AddDate(0, 0, -3),
			"type":    "event",
			"survey":  freeFormSurvey,
		},
	}
	_, err := db.Collection("news").InsertMany(ctx, items)
	return err
}
