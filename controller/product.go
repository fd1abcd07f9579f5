package controller

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"backoffice/config"
	"backoffice/models"
	"backoffice/validation"
)

const (
	AllProductsCacheKey = "all_products"
	ProductCacheTTL     = 5 * time.Minute
)

// GetProducts godoc
// @Summary List products
// @Description Paginated product listing with optional search and active filters. The unfiltered first page is cached.
// @Tags products
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /products [get]
func GetProducts(c *gin.Context) {
	ctx := c.Request.Context()
	search := c.Query("search")
	active := c.Query("active")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	// only the plain listing is worth caching; filtered queries go to the DB
	cacheable := search == "" && active == "" && page == 1
	if cacheable && config.RedisClient != nil {
		cacheData, err := config.RedisClient.Get(ctx, AllProductsCacheKey).Result()
		if err == nil {
			var products []models.Product
			if json.Unmarshal([]byte(cacheData), &products) == nil {
				c.JSON(http.StatusOK, gin.H{"source": "cache", "data": products})
				return
			}
		}
	}

	query := config.DB.WithContext(ctx).Model(&models.Product{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR sku LIKE ?", like, like, like)
	}
	if active != "" {
		isActive, err := strconv.ParseBool(active)
		if err == nil {
			query = query.Where("is_active = ?", isActive)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count products"})
		return
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Scopes(Paging(page, perPage)).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch products"})
		return
	}

	if cacheable && config.RedisClient != nil {
		productsJSON, err := json.Marshal(products)
		if err == nil {
			go config.RedisClient.Set(context.Background(), AllProductsCacheKey, productsJSON, ProductCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"source": "database",
		"data":   products,
		"meta": gin.H{
			"total":     total,
			"page":      page,
			"per_page":  perPage,
			"last_page": int(math.Ceil(float64(total) / float64(max(perPage, 1)))),
		},
	})
}

// GetProductByID godoc
// @Summary Get a single product by its ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Router /products/{id} [get]
func GetProductByID(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	productCacheKey := "product:" + id

	if config.RedisClient != nil {
		cachedProduct, err := config.RedisClient.Get(ctx, productCacheKey).Result()
		if err == nil {
			var product models.Product
			if json.Unmarshal([]byte(cachedProduct), &product) == nil {
				c.JSON(http.StatusOK, gin.H{"source": "cache", "data": product})
				return
			}
		}
	}

	var product models.Product
	if result := config.DB.WithContext(ctx).First(&product, id); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if config.RedisClient != nil {
		productJSON, err := json.Marshal(product)
		if err == nil {
			go config.RedisClient.Set(context.Background(), productCacheKey, productJSON, ProductCacheTTL)
		}
	}

	c.JSON(http.StatusOK, gin.H{"source": "database", "data": product})
}

// CreateProduct godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Success 201 {object} models.Product
// @Router /products [post]
func CreateProduct(c *gin.Context) {
	var req validation.CreateProductRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		SKU:           req.SKU,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if result := config.DB.Create(&product); result.Error != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Could not create product: " + result.Error.Error()})
		return
	}

	if config.RedisClient != nil {
		go config.RedisClient.Del(context.Background(), AllProductsCacheKey)
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Applies only the provided fields.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Router /products/{id} [put]
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var product models.Product

	if result := config.DB.First(&product, id); result.Error != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req validation.UpdateProductRequest
	if err := validation.BindAndValidate(c, &req, validate); err != nil {
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Could not update product: " + err.Error()})
		return
	}

	if config.RedisClient != nil {
		productCacheKey := "product:" + id
		go config.RedisClient.Del(context.Background(), AllProductsCacheKey)
		go config.RedisClient.Del(context.Background(), productCacheKey)
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description A product referenced by any order is deactivated instead of deleted, so historical orders keep their reference.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Router /products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var references int64
	if err := config.DB.Model(&models.OrderItem{}).Where("product_id = ?", productID).Count(&references).Error; err != nil {
		logrus.WithError(err).Error("could not check product references")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if references > 0 {
		if err := config.DB.Model(&product).Update("is_active", false).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not deactivate product"})
			return
		}
		invalidateProductCache(productID)
		c.JSON(http.StatusOK, gin.H{
			"message": "Product deactivated because it exists in orders",
			"product": product,
		})
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	invalidateProductCache(productID)
	c.Status(http.StatusNoContent)
}

func invalidateProductCache(productID uint) {
	if config.RedisClient == nil {
		return
	}
	productCacheKey := "product:" + strconv.FormatUint(uint64(productID), 10)
	go config.RedisClient.Del(context.Background(), AllProductsCacheKey)
	go config.RedisClient.Del(context.Background(), productCacheKey)
}
