// Package codec reads and writes entity documents. Documents are YAML (JSON
// being a subset of it); each document holds one entity mapping. Written
// documents list fields in the entity's declaration order.
package codec
