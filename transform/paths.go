package transform

import (
	"strings"

	"github.com/erraggy/cresttools/descerrors"
	"github.com/erraggy/cresttools/descriptor"
	"github.com/erraggy/cresttools/internal/naming"
	"github.com/erraggy/cresttools/internal/pathutil"
	"github.com/erraggy/cresttools/swagger"
)

// fragmentSeparator splits a logical path key into the Swagger path and
// the disambiguating fragment. Consumers strip the fragment before using
// the path on the wire.
const fragmentSeparator = "#"

// buildPaths walks the descriptor's path tree in deterministic order:
// paths sorted by name, versions ascending within each path.
func (t *transformer) buildPaths() error {
	for _, pathName := range t.desc.Paths.Names() {
		versioned := t.desc.Paths[pathName]
		for _, version := range versioned.Versions() {
			resource, err := t.resolveResource(versioned[version])
			if err != nil {
				return err
			}
			normalized := pathutil.Join(pathName)
			t.logger.Debug("building resource paths", "path", normalized, "version", version)
			if err := t.buildResourcePaths(resource, normalized, "", version, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveResource follows a service reference when the resource is one,
// and returns the resource itself otherwise.
func (t *transformer) resolveResource(resource *descriptor.Resource) (*descriptor.Resource, error) {
	if resource.Ref != nil {
		return t.resolver.Service(resource.Ref)
	}
	return resource, nil
}

// buildResourcePaths emits the operations of a single resource and
// recurses into its collection items and sub-resources. parentTag is
// non-empty when the resource is the items template of a collection, in
// which case the collection's tag is reused instead of minting a new one.
func (t *transformer) buildResourcePaths(resource *descriptor.Resource, pathName, parentTag, version string, parameters []*descriptor.Parameter) error {
	pathNamespace := naming.Normalize(pathName, version)

	tag := parentTag
	if tag == "" {
		if resource.Title != "" {
			tag = resource.Title
		} else {
			tag = pathName
		}
		if version != descriptor.Unversioned {
			tag += " v" + version
		}
		t.doc.AddTag(&swagger.Tag{Name: tag})
	}

	operationParameters := pathutil.MergeParameters(parameters, resource.Parameters...)
	resourceSchema := resource.ResourceSchema

	if err := t.buildCreate(resource, pathName, pathNamespace, tag, version, resourceSchema, operationParameters); err != nil {
		return err
	}
	if err := t.buildRead(resource, pathName, pathNamespace, tag, version, resourceSchema, operationParameters); err != nil {
		return err
	}
	if err := t.buildUpdate(resource, pathName, pathNamespace, tag, version, resourceSchema, operationParameters); err != nil {
		return err
	}
	if err := t.buildDelete(resource, pathName, pathNamespace, tag, version, resourceSchema, operationParameters); err != nil {
		return err
	}
	if err := t.buildPatch(resource, pathName, pathNamespace, tag, version, resourceSchema, operationParameters); err != nil {
		return err
	}
	if err := t.buildActions(resource, pathName, pathNamespace, tag, version, operationParameters); err != nil {
		return err
	}
	if err := t.buildQueries(resource, pathName, pathNamespace, tag, version, resourceSchema, operationParameters); err != nil {
		return err
	}
	if err := t.buildItems(resource, pathName, tag, version, parameters); err != nil {
		return err
	}
	return t.buildSubResources(resource.SubResources, pathName, version, parameters)
}

// buildItems expands a collection's items template into the per-member
// resource at "<path>/{<pathParameter>}", inheriting the collection's
// schema, title, MVCC support, and tag.
func (t *transformer) buildItems(resource *descriptor.Resource, pathName, tag, version string, parameters []*descriptor.Parameter) error {
	items := resource.Items
	if items == nil {
		return nil
	}
	itemsResource := items.AsResource(resource.MVCCSupported, resource.ResourceSchema, resource.Title, resource.Description)
	pathParameter := items.EffectivePathParameter()

	itemsParameters := pathutil.MergeParameters(parameters, resource.Parameters...)
	itemsParameters = pathutil.MergeParameters(itemsParameters, pathParameter)
	itemsPath := pathutil.Join(pathName, "{"+pathParameter.Name+"}")

	if err := t.buildSubResources(items.SubResources, itemsPath, version, itemsParameters); err != nil {
		return err
	}
	return t.buildResourcePaths(itemsResource, itemsPath, tag, version, itemsParameters)
}

// buildSubResources emits each nested resource under its relative path
// suffix, in sorted order. Path variables in the suffix contribute
// required path parameters inherited by the subtree.
func (t *transformer) buildSubResources(subResources descriptor.SubResources, pathName, version string, parameters []*descriptor.Parameter) error {
	for _, name := range subResources.Names() {
		resource, err := t.resolveResource(subResources[name])
		if err != nil {
			return err
		}
		subParameters := pathutil.MergeParameters(parameters, pathutil.Parameters(name)...)
		subPath := pathutil.Join(pathName, name)
		if err := t.buildResourcePaths(resource, subPath, "", version, subParameters); err != nil {
			return err
		}
	}
	return nil
}

// addOperation registers an operation under pathName, synthesizing a
// "path#fragment" key when the plain (path, method) slot is already
// taken or a version forces disambiguation.
func (t *transformer) addOperation(op *swagger.Operation, method, pathName, fragment, version, tag string) error {
	if version != descriptor.Unversioned {
		op.SetExtension("x-resourceVersion", version)
	}
	if tag != "" {
		op.Tags = append(op.Tags, tag)
	}

	showFragment := version != descriptor.Unversioned
	item, exists := t.doc.Paths[pathName]
	if !exists {
		item = &swagger.PathItem{}
	} else if !showFragment {
		existing, ok := item.Operation(method)
		if !ok {
			return &descerrors.UnsupportedValueError{Field: "method", Value: method}
		}
		showFragment = existing != nil
	}

	if showFragment {
		if strings.Contains(pathName, fragmentSeparator) {
			return &descerrors.DuplicatePathError{
				Path:    pathName,
				Message: "path must not contain the fragment separator",
			}
		}
		unique := pathName + fragmentSeparator + fragment
		if _, taken := t.doc.Paths[unique]; taken {
			return &descerrors.DuplicatePathError{
				Path:     pathName,
				Fragment: fragment,
				Message:  "fragment is not unique for path",
			}
		}
		t.logger.Debug("synthesized unique path", "path", unique, "method", method)
		item = &swagger.PathItem{}
		t.doc.Paths[unique] = item
	} else if !exists {
		t.doc.Paths[pathName] = item
	}
	return item.Set(method, op)
}
