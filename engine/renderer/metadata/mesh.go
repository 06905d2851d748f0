package metadata

import "time"

// Also used as result_data from job.
type MeshLoadParams struct {
	ResourceName string
	OutMesh      *Mesh
	MeshResource *Resource
	/** @brief Set by the job when loading failed. */
	Err error
	/** @brief Time spent reading and assembling the model. */
	Elapsed time.Duration
}

type Mesh struct {
	/** @brief A unique identifier, regenerated on every (re)load. */
	UniqueID string
	/** @brief The mesh name, the model file's base name. */
	Name string
	/** @brief The model file the mesh was loaded from. */
	Path string
	/** @brief Incremented every time the geometry is replaced. */
	Generation uint8
	/** @brief True when the default geometry stands in for a failed load. */
	IsDefault bool
	Geometry  *GeometryConfig
}
