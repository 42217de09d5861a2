package resolve

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// ErrUnmergeablePayload indicates that payload is not a flat key-value map
var ErrUnmergeablePayload = errors.New("payload is not a flat key-value map")

// mergeFlat сливает два payload пополям относительно общего снимка base:
//   - поле менялось только одной стороной — берется эта сторона
//   - поле менялось обеими — побеждает сторона по LWW (localWins)
//   - поле не менялось — остается базовое значение
//
// base может быть nil (общего снимка нет): тогда каждое присутствующее
// поле считается измененным обеими сторонами.
func mergeFlat(base, local, remote []byte, localWins bool) ([]byte, error) {
	baseMap, err := flatMap(base)
	if err != nil {
		return nil, err
	}
	localMap, err := flatMap(local)
	if err != nil {
		return nil, err
	}
	remoteMap, err := flatMap(remote)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]any)

	for key := range union(localMap, remoteMap, baseMap) {
		lv, lok := localMap[key]
		rv, rok := remoteMap[key]
		bv, bok := baseMap[key]

		localChanged := fieldChanged(lv, lok, bv, bok)
		remoteChanged := fieldChanged(rv, rok, bv, bok)

		switch {
		case localChanged && remoteChanged:
			// Обе стороны трогали поле — пополевой LWW
			if reflect.DeepEqual(lv, rv) {
				if lok {
					merged[key] = lv
				}
				continue
			}
			if localWins {
				if lok {
					merged[key] = lv
				}
			} else if rok {
				merged[key] = rv
			}
		case localChanged:
			if lok {
				merged[key] = lv
			}
		case remoteChanged:
			if rok {
				merged[key] = rv
			}
		default:
			if bok {
				merged[key] = bv
			}
		}
	}

	// json.Marshal сортирует ключи map — результат детерминирован
	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged payload: %w", err)
	}
	return data, nil
}

// flatMap разбирает payload в плоскую map; вложенные объекты и массивы
// делают payload несливаемым
func flatMap(payload []byte) (map[string]any, error) {
	if len(payload) == 0 {
		return map[string]any{}, nil
	}

	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnmergeablePayload, err)
	}

	for key, value := range m {
		switch value.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: field %q is nested", ErrUnmergeablePayload, key)
		}
	}

	return m, nil
}

// fieldChanged определяет, меняла ли сторона поле относительно базы
func fieldChanged(v any, ok bool, bv any, bok bool) bool {
	if ok != bok {
		return true
	}
	if !ok {
		return false
	}
	return !reflect.DeepEqual(v, bv)
}

// union собирает множество ключей всех map
func union(maps ...map[string]any) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, m := range maps {
		for key := range m {
			keys[key] = struct{}{}
		}
	}
	return keys
}
