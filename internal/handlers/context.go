package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/middleware"
	"github.com/petshopsuite/petshop-api/internal/models"
)

func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextUserID)
}

func currentPetShopID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextPetShopID)
}

// shopTimezone devolve o fuso configurado do pet shop. Vazio (shop não
// encontrado ou sem fuso) cai no padrão dentro do pacote timezone.
func shopTimezone(db *gorm.DB, petShopID uint) string {
	var shop models.PetShop
	if err := db.Select("timezone").First(&shop, petShopID).Error; err != nil {
		return ""
	}
	return shop.Timezone
}
