package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatecrm/models"
	"estatecrm/query"
	"estatecrm/utils"
)

type LeadStore interface {
	Create(ctx context.Context, lead *models.Lead) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.Lead, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Lead, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type CustomerStore interface {
	Create(ctx context.Context, customer *models.Customer) error
	FindByLeadID(ctx context.Context, leadID primitive.ObjectID) (*models.Customer, error)
}

type LeadService struct {
	leads     LeadStore
	customers CustomerStore
}

func NewLeadService(leads LeadStore, customers CustomerStore) *LeadService {
	return &LeadService{leads: leads, customers: customers}
}

type LeadQuery struct {
	Search        string
	Status        string
	AssignedAgent string
	Page          string
	Limit         string
	Sort          string
}

func (s *LeadService) List(ctx context.Context, q LeadQuery) (*query.Page[models.Lead], error) {
	filter := bson.M{}
	if q.Search != "" {
		for k, v := range query.Search(q.Search, "identity.fullName", "identity.email", "identity.phone") {
			filter[k] = v
		}
	}
	if q.Status != "" {
		if !models.LeadStatus(q.Status).Valid() {
			return nil, utils.NewValidationError(utils.FieldError{
				Path:    "leadStatus",
				Message: "unknown lead status",
			})
		}
		filter["system.leadStatus"] = q.Status
	}
	if q.AssignedAgent != "" {
		agentID, err := primitive.ObjectIDFromHex(q.AssignedAgent)
		if err != nil {
			return nil, utils.NewValidationError(utils.FieldError{
				Path:    "assignedAgent",
				Message: "must be a valid object id",
			})
		}
		filter["system.assignedAgent"] = agentID
	}

	p := query.ParsePagination(q.Page, q.Limit, query.DefaultLimit, query.SearchMaxLimit)
	sort := query.Sort(q.Sort, "createdAt", -1)

	items, err := s.leads.Find(ctx, filter, p.Skip(), int64(p.Limit), sort)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	total, err := s.leads.Count(ctx, filter)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return query.NewPage(items, total, p), nil
}

func (s *LeadService) Get(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if lead == nil {
		return nil, utils.NewNotFound("Lead not found")
	}
	return lead, nil
}

func (s *LeadService) Create(ctx context.Context, req *models.CreateLeadRequest) (*models.Lead, error) {
	now := time.Now()
	lead := &models.Lead{
		Identity:     req.Identity,
		Demographics: req.Demographics,
		Vision:       req.Vision,
		Investment:   req.Investment,
		Location:     req.Location,
		Lifestyle:    req.Lifestyle,
		Unit:         req.Unit,
		System: models.LeadSystem{
			Status: models.LeadStatusNew,
			Source: req.Source,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, utils.NewInternal(err)
	}
	return lead, nil
}

func (s *LeadService) Update(ctx context.Context, id primitive.ObjectID, req *models.UpdateLeadRequest) (*models.Lead, error) {
	fields := bson.M{}
	if req.Identity != nil {
		fields["identity"] = *req.Identity
	}
	if req.Demographics != nil {
		fields["demographics"] = *req.Demographics
	}
	if req.Vision != nil {
		fields["propertyVision"] = *req.Vision
	}
	if req.Investment != nil {
		fields["investmentPreferences"] = *req.Investment
	}
	if req.Location != nil {
		fields["locationPreferences"] = *req.Location
	}
	if req.Lifestyle != nil {
		fields["lifestylePreferences"] = *req.Lifestyle
	}
	if req.Unit != nil {
		fields["unitPreferences"] = *req.Unit
	}
	if req.Score != nil {
		fields["system.score"] = *req.Score
	}

	lead, err := s.leads.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if lead == nil {
		return nil, utils.NewNotFound("Lead not found")
	}
	return lead, nil
}

func (s *LeadService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.leads.Delete(ctx, id)
	if err != nil {
		return utils.NewInternal(err)
	}
	if !deleted {
		return utils.NewNotFound("Lead not found")
	}
	return nil
}

// UpdateStatus moves a lead along the pipeline. Leads in a terminal state
// (Lost, Converted) stay there; conversion itself goes through Convert.
func (s *LeadService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) (*models.Lead, error) {
	if !status.Valid() {
		return nil, utils.NewValidationError(utils.FieldError{
			Path:    "leadStatus",
			Message: "unknown lead status",
		})
	}
	if status == models.LeadStatusConverted {
		return nil, utils.NewBadRequest("Use the convert endpoint to convert a lead")
	}

	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if lead == nil {
		return nil, utils.NewNotFound("Lead not found")
	}
	if lead.System.Status.Terminal() {
		return nil, utils.NewConflict("Lead is in a terminal state")
	}

	updated, err := s.leads.Update(ctx, id, bson.M{"system.leadStatus": status})
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return updated, nil
}

func (s *LeadService) Assign(ctx context.Context, id, agentID primitive.ObjectID) (*models.Lead, error) {
	lead, err := s.leads.Update(ctx, id, bson.M{"system.assignedAgent": agentID})
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if lead == nil {
		return nil, utils.NewNotFound("Lead not found")
	}
	return lead, nil
}

// Convert marks the lead Converted and creates exactly one Customer for it.
// A second conversion attempt is rejected without creating a duplicate; the
// unique leadId index closes the race against concurrent conversions.
func (s *LeadService) Convert(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if lead == nil {
		return nil, utils.NewNotFound("Lead not found")
	}
	if lead.System.Status == models.LeadStatusConverted {
		return nil, utils.NewConflict("Lead already converted")
	}
	if lead.System.Status == models.LeadStatusLost {
		return nil, utils.NewConflict("Lost leads cannot be converted")
	}

	now := time.Now()
	customer := &models.Customer{
		LeadID:    lead.ID,
		Identity:  lead.Identity,
		Ownership: []models.OwnershipRecord{},
		System:    models.CustomerSystem{Status: models.CustomerStatusActive},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.NewConflict("Lead already converted")
		}
		return nil, utils.NewInternal(err)
	}

	if _, err := s.leads.Update(ctx, id, bson.M{
		"system.leadStatus":  models.LeadStatusConverted,
		"system.convertedAt": now,
	}); err != nil {
		return nil, utils.NewInternal(err)
	}

	return customer, nil
}
