// Package docs регистрирует описание HTTP API для swagger UI.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Список часов",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.ProductResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Создает товар, загружает изображение и сохраняет ссылку на него",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Добавление часов",
                "parameters": [
                    {"type": "string", "description": "Название", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Описание", "name": "description", "in": "formData"},
                    {"type": "string", "description": "Пол", "name": "gender", "in": "formData", "required": true},
                    {"type": "number", "description": "Цена", "name": "price", "in": "formData", "required": true},
                    {"type": "integer", "description": "ID бренда", "name": "brand_id", "in": "formData", "required": true},
                    {"type": "integer", "description": "ID категории", "name": "category_id", "in": "formData", "required": true},
                    {"type": "file", "description": "Изображение", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.ProductResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Бренд или категория не найдены", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/brand": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Часы бренда",
                "parameters": [
                    {"type": "string", "description": "Название бренда (поиск без учета регистра)", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.ProductResponse"}}},
                    "404": {"description": "Бренд не найден", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Поиск часов по названию",
                "parameters": [
                    {"type": "string", "description": "Часть названия", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.ProductResponse"}}}
                }
            }
        },
        "/products/gender": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Фильтр часов по полу",
                "parameters": [
                    {"type": "string", "description": "Пол", "name": "gender", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.ProductResponse"}}}
                }
            }
        },
        "/accessories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accessories"],
                "summary": "Список аксессуаров",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.AccessoryResponse"}}}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["accessories"],
                "summary": "Добавление аксессуара",
                "parameters": [
                    {"type": "string", "description": "Название", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "Описание", "name": "description", "in": "formData"},
                    {"type": "string", "description": "Цвет", "name": "color", "in": "formData", "required": true},
                    {"type": "number", "description": "Цена", "name": "price", "in": "formData", "required": true},
                    {"type": "integer", "description": "ID бренда", "name": "brand_id", "in": "formData", "required": true},
                    {"type": "integer", "description": "ID категории", "name": "category_id", "in": "formData", "required": true},
                    {"type": "file", "description": "Изображение", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.AccessoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/accessories/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accessories"],
                "summary": "Поиск аксессуаров по названию",
                "parameters": [
                    {"type": "string", "description": "Часть названия", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.AccessoryResponse"}}}
                }
            }
        },
        "/accessories/color": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accessories"],
                "summary": "Фильтр аксессуаров по цвету",
                "parameters": [
                    {"type": "string", "description": "Цвет (точное совпадение)", "name": "color", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.AccessoryResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/brands": {
            "get": {
                "produces": ["application/json"],
                "tags": ["brands"],
                "summary": "Список брендов",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.BrandResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["brands"],
                "summary": "Создание бренда",
                "parameters": [
                    {"description": "Бренд", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.NameRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.BrandResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Список категорий",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.CategoryResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Создание категории",
                "parameters": [
                    {"description": "Категория", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.NameRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.CategoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/likes": {
            "post": {
                "description": "Записывает количество лайков пользователя для товара. Повторный вызов перезаписывает значение",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["likes"],
                "summary": "Лайк товара",
                "parameters": [
                    {"description": "Лайк", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.LikeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.LikeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Пользователь или товар не найдены", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "http.NameRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "http.LikeRequest": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"},
                "product_id": {"type": "integer"},
                "like_count": {"type": "integer"}
            }
        },
        "http.BrandResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.CategoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.ImageResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "img_url": {"type": "string"}
            }
        },
        "http.ProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "gender": {"type": "string"},
                "price": {"type": "string"},
                "brand_id": {"type": "integer"},
                "category_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "brand": {"$ref": "#/definitions/http.BrandResponse"},
                "category": {"$ref": "#/definitions/http.CategoryResponse"},
                "images": {"type": "array", "items": {"$ref": "#/definitions/http.ImageResponse"}}
            }
        },
        "http.AccessoryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "color": {"type": "string"},
                "price": {"type": "string"},
                "brand_id": {"type": "integer"},
                "category_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "brand": {"$ref": "#/definitions/http.BrandResponse"},
                "images": {"type": "array", "items": {"$ref": "#/definitions/http.ImageResponse"}}
            }
        },
        "http.LikeResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_id": {"type": "integer"},
                "product_id": {"type": "integer"},
                "like_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo содержит метаданные API, которые можно переопределить при запуске.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Watch Store API",
	Description:      "Каталог часов и аксессуаров.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
