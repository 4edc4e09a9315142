package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/models"
	"github.com/kindredlab/kindred/internal/pedigree"
)

// ArchetypeHandler serves the static reference endpoints: archetype
// descriptions and consanguinity scenario presets.
type ArchetypeHandler struct {
	archetypes []archetypeInfo
	scenarios  []genetics.Scenario
	log        *logrus.Logger
}

// archetypeInfo describes one relationship archetype for the UI: its
// base coefficient, the size of the seeded template, and whether the
// sex-linked tables cover it.
type archetypeInfo struct {
	Relationship    models.RelationshipType `json:"relationship"`
	BaseR           float64                 `json:"base_r"`
	TemplatePersons int                     `json:"template_persons"`
	XLinkedModeled  bool                    `json:"x_linked_modeled"`
	YLinkedModeled  bool                    `json:"y_linked_modeled"`
}

// NewArchetypeHandler creates an ArchetypeHandler. The archetype list is
// assembled once here since it never changes at runtime.
func NewArchetypeHandler(scenarios []genetics.Scenario, log *logrus.Logger) *ArchetypeHandler {
	sexes := []models.Sex{models.SexMale, models.SexFemale}

	archetypes := make([]archetypeInfo, 0)
	for _, rel := range genetics.Archetypes() {
		base, _ := genetics.BaseR(rel)

		info := archetypeInfo{
			Relationship:    rel,
			BaseR:           base,
			TemplatePersons: len(pedigree.BuildTemplate(rel, models.SexMale, models.SexFemale).VisibleGraph().Persons),
		}
		for _, sa := range sexes {
			for _, sb := range sexes {
				if genetics.XLinked(rel, sa, sb) != nil {
					info.XLinkedModeled = true
				}
				if genetics.YLinked(rel, sa, sb) != nil {
					info.YLinkedModeled = true
				}
			}
		}
		archetypes = append(archetypes, info)
	}

	return &ArchetypeHandler{archetypes: archetypes, scenarios: scenarios, log: log}
}

// List handles GET /api/v1/archetypes.
func (h *ArchetypeHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"archetypes": h.archetypes})
}

// ListScenarios handles GET /api/v1/scenarios.
func (h *ArchetypeHandler) ListScenarios(c *gin.Context) {
	scenarios := h.scenarios
	if scenarios == nil {
		scenarios = []genetics.Scenario{}
	}

	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios, "count": len(scenarios)})
}
