package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"sales-crm/internal/config"
	"sales-crm/internal/database"
	"sales-crm/internal/features/activity"
	"sales-crm/internal/features/client"
	"sales-crm/internal/features/deal"
	"sales-crm/internal/features/lead"
	"sales-crm/internal/features/settings"
	"sales-crm/internal/features/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "demo12345"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	defer mongoClient.Disconnect(context.Background())

	mongoDB := &database.MongodbDB{DB: mongoClient.Database(cfg.DBName)}

	fmt.Println("🌱 Starting Demo Data Seeding...")

	ownerID, err := seedUser(ctx, mongoDB)
	if err != nil {
		log.Fatal(err)
	}

	seedSettings(ctx, mongoDB, ownerID)
	leadIDs := seedLeads(ctx, mongoDB, ownerID)
	clientIDs := seedClients(ctx, mongoDB, ownerID)
	seedDeals(ctx, mongoDB, ownerID, leadIDs, clientIDs)
	seedActivities(ctx, mongoDB, ownerID)

	fmt.Println("✅ Seeding complete")
	fmt.Printf("   login: %s / %s\n", demoEmail, demoPassword)
}

func seedUser(ctx context.Context, mongoDB *database.MongodbDB) (string, error) {
	repo := user.NewUserRepository(mongoDB)

	existing, err := repo.FindByEmail(ctx, demoEmail)
	if err == nil {
		fmt.Printf("User %s already exists\n", demoEmail)
		return existing.ID.Hex(), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now()
	usr := &user.User{
		Email:       demoEmail,
		Password:    string(hash),
		DisplayName: "Demo User",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, usr); err != nil {
		return "", err
	}
	fmt.Printf("Created User: %s\n", demoEmail)
	return usr.ID.Hex(), nil
}

func seedSettings(ctx context.Context, mongoDB *database.MongodbDB, ownerID string) {
	repo := settings.NewSettingsRepository(mongoDB)

	s := settings.DefaultSettings(ownerID)
	s.CompanyName = "Demo Trading LLC"
	if err := repo.Upsert(ctx, s); err != nil {
		log.Printf("Failed to seed settings: %v", err)
		return
	}
	fmt.Println("Seeded settings")
}

func seedLeads(ctx context.Context, mongoDB *database.MongodbDB, ownerID string) []string {
	col := mongoDB.DB.Collection("leads")
	if count, _ := col.CountDocuments(ctx, bson.M{"owner_id": ownerID}); count > 0 {
		fmt.Println("Leads already seeded")
		return nil
	}

	names := []struct {
		name, email, company string
		source               string
		status               lead.LeadStatus
		value                float64
	}{
		{"Anna Petrova", "anna@northwind.example", "Northwind", lead.SourceWebsite, lead.StatusNew, 12000},
		{"Boris Ivanov", "boris@contoso.example", "Contoso", lead.SourceReferral, lead.StatusContacted, 45000},
		{"Clara Schmidt", "clara@fabrikam.example", "Fabrikam", lead.SourceAdvertising, lead.StatusQualified, 8000},
		{"Dmitry Orlov", "dmitry@adatum.example", "Adatum", lead.SourceColdCall, lead.StatusProposal, 67000},
		{"Elena Volkova", "elena@litware.example", "Litware", lead.SourceSocial, lead.StatusClosedWon, 23000},
		{"Felix Braun", "felix@proseware.example", "Proseware", lead.SourceWebsite, lead.StatusClosedLost, 15000},
	}

	var ids []string
	for i, n := range names {
		created := time.Now().AddDate(0, 0, -rand.Intn(60))
		l := lead.Lead{
			ID:        primitive.NewObjectID(),
			OwnerID:   ownerID,
			Name:      n.name,
			Email:     n.email,
			Company:   n.company,
			Source:    n.source,
			Status:    n.status,
			Value:     n.value,
			CreatedAt: created,
			UpdatedAt: created,
		}
		if _, err := col.InsertOne(ctx, l); err != nil {
			log.Printf("Failed to seed lead %d: %v", i, err)
			continue
		}
		ids = append(ids, l.ID.Hex())
	}
	fmt.Printf("Seeded %d leads\n", len(ids))
	return ids
}

func seedClients(ctx context.Context, mongoDB *database.MongodbDB, ownerID string) []string {
	col := mongoDB.DB.Collection("clients")
	if count, _ := col.CountDocuments(ctx, bson.M{"owner_id": ownerID}); count > 0 {
		fmt.Println("Clients already seeded")
		return nil
	}

	rows := []struct {
		name, email, company string
		status               client.ClientStatus
		total                float64
	}{
		{"Gregor House", "gregor@tailspin.example", "Tailspin Toys", client.StatusActive, 150000},
		{"Hanna Meyer", "hanna@wingtip.example", "Wingtip", client.StatusActive, 88000},
		{"Igor Sokolov", "igor@margie.example", "Margie's Travel", client.StatusInactive, 12000},
		{"Julia Weiss", "julia@lucerne.example", "Lucerne Publishing", client.StatusProspect, 0},
	}

	var ids []string
	for i, n := range rows {
		created := time.Now().AddDate(0, 0, -rand.Intn(120))
		lastContact := time.Now().AddDate(0, 0, -rand.Intn(14))
		c := client.Client{
			ID:          primitive.NewObjectID(),
			OwnerID:     ownerID,
			Name:        n.name,
			Email:       n.email,
			Company:     n.company,
			Status:      n.status,
			TotalValue:  n.total,
			LastContact: &lastContact,
			CreatedAt:   created,
			UpdatedAt:   created,
		}
		if _, err := col.InsertOne(ctx, c); err != nil {
			log.Printf("Failed to seed client %d: %v", i, err)
			continue
		}
		ids = append(ids, c.ID.Hex())
	}
	fmt.Printf("Seeded %d clients\n", len(ids))
	return ids
}

func seedDeals(ctx context.Context, mongoDB *database.MongodbDB, ownerID string, leadIDs, clientIDs []string) {
	col := mongoDB.DB.Collection("deals")
	if count, _ := col.CountDocuments(ctx, bson.M{"owner_id": ownerID}); count > 0 {
		fmt.Println("Deals already seeded")
		return
	}

	rows := []struct {
		title string
		stage deal.DealStage
		value float64
		prob  int
	}{
		{"Annual license renewal", deal.StageNew, 30000, 20},
		{"Warehouse automation pilot", deal.StageQualified, 120000, 40},
		{"Support contract upgrade", deal.StageProposal, 18000, 60},
		{"Fleet tracking rollout", deal.StageNegotiation, 95000, 75},
		{"CRM migration project", deal.StageClosedWon, 54000, 100},
		{"Legacy system retirement", deal.StageClosedLost, 40000, 0},
	}

	seeded := 0
	for i, n := range rows {
		created := time.Now().AddDate(0, 0, -rand.Intn(45))
		closeDate := time.Now().AddDate(0, 0, 14+rand.Intn(60))
		d := deal.Deal{
			ID:                primitive.NewObjectID(),
			OwnerID:           ownerID,
			Title:             n.title,
			Value:             n.value,
			Stage:             n.stage,
			Probability:       n.prob,
			ExpectedCloseDate: &closeDate,
			CreatedAt:         created,
			UpdatedAt:         created,
		}
		// Alternate between lead-linked and client-linked deals.
		if i%2 == 0 && len(leadIDs) > 0 {
			d.LeadID = leadIDs[i%len(leadIDs)]
		} else if len(clientIDs) > 0 {
			d.ClientID = clientIDs[i%len(clientIDs)]
		}
		if _, err := col.InsertOne(ctx, d); err != nil {
			log.Printf("Failed to seed deal %d: %v", i, err)
			continue
		}
		seeded++
	}
	fmt.Printf("Seeded %d deals\n", seeded)
}

func seedActivities(ctx context.Context, mongoDB *database.MongodbDB, ownerID string) {
	col := mongoDB.DB.Collection("activities")
	if count, _ := col.CountDocuments(ctx, bson.M{"owner_id": ownerID}); count > 0 {
		fmt.Println("Activities already seeded")
		return
	}

	rows := []struct {
		typ   activity.ActivityType
		title string
		desc  string
	}{
		{activity.TypeCall, "Intro call", "Discussed requirements with Northwind"},
		{activity.TypeMeeting, "On-site demo", "Product demo at Contoso office"},
		{activity.TypeEmail, "Proposal sent", "Sent pricing proposal to Fabrikam"},
		{activity.TypeNote, "Budget note", "Adatum budget approval expected next quarter"},
		{activity.TypeTask, "Follow up", "Call Litware back on Friday"},
	}

	seeded := 0
	for i, n := range rows {
		a := activity.Activity{
			ID:          primitive.NewObjectID(),
			OwnerID:     ownerID,
			Type:        n.typ,
			Title:       n.title,
			Description: n.desc,
			CreatedAt:   time.Now().AddDate(0, 0, -i),
		}
		if _, err := col.InsertOne(ctx, a); err != nil {
			log.Printf("Failed to seed activity %d: %v", i, err)
			continue
		}
		seeded++
	}
	fmt.Printf("Seeded %d activities\n", seeded)
}
