/*
   Copyright 2026 The VCheck Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package verrors

import (
	"vcheck.dev/verrors/family"
	"vcheck.dev/verrors/kind"
)

// RussianWordings returns a complete Russian wording set, suitable for
// layering over the defaults:
//
//	ru := verrors.MustCatalog(verrors.WithWordings(verrors.RussianWordings()))
//	msg := v.RenderIn(ru)
//
// Wording is data: the set carries no selection mechanism of its own, and
// Russian grammar is not forced into the English noun-swap pattern.
//
// The returned map is a fresh copy on every call.
func RussianWordings() map[CatalogKey]Wording {
	return map[CatalogKey]Wording{
		// -- scalar kinds -----------------------------------------------

		{kind.EmptyValue, family.Value}: {
			Named:   "Значение {name} не может быть пустым.",
			Generic: "Значение не может быть пустым.",
		},
		{kind.EmptyValue, family.Argument}: {
			Named:   "Аргумент {name} не может быть пустым.",
			Generic: "Аргумент не может быть пустым.",
		},

		{kind.ValueOutOfRange, family.Value}: {
			Named:   "Значение {name} вне допустимого диапазона.",
			Generic: "Значение вне допустимого диапазона.",
		},
		{kind.ValueOutOfRange, family.Argument}: {
			Named:   "Аргумент {name} вне допустимого диапазона.",
			Generic: "Аргумент вне допустимого диапазона.",
		},

		{kind.InvalidURI, family.Value}: {
			Named:   "Значение {name} не является корректным URI.",
			Generic: "Значение не является корректным URI.",
		},
		{kind.InvalidURI, family.Argument}: {
			Named:   "Аргумент {name} не является корректным URI.",
			Generic: "Аргумент не является корректным URI.",
		},

		// -- collection kinds -------------------------------------------

		{kind.CollectionEmpty, family.Value}: {
			NamedTyped: "Коллекция {name} типа {type} не может быть пустой.",
			Named:      "Коллекция {name} не может быть пустой.",
			Generic:    "Коллекция не может быть пустой.",
		},
		{kind.CollectionEmpty, family.Argument}: {
			NamedTyped: "Аргумент {name} типа {type} не может быть пустой коллекцией.",
			Named:      "Аргумент {name} не может быть пустой коллекцией.",
			Generic:    "Аргумент не может быть пустой коллекцией.",
		},

		{kind.ItemEmptyString, family.Value}: {
			NamedTyped: "Коллекция {name} типа {type} не может содержать пустые строки.",
			Named:      "Коллекция {name} не может содержать пустые строки.",
			Generic:    "Коллекция не может содержать пустые строки.",
		},
		{kind.ItemEmptyString, family.Argument}: {
			NamedTyped: "Аргумент {name} типа {type} не может содержать пустые строки.",
			Named:      "Аргумент {name} не может содержать пустые строки.",
			Generic:    "Аргумент не может содержать пустые строки.",
		},

		{kind.ItemWhitespace, family.Value}: {
			NamedTyped: "Коллекция {name} типа {type} не может содержать строки из одних пробелов.",
			Named:      "Коллекция {name} не может содержать строки из одних пробелов.",
			Generic:    "Коллекция не может содержать строки из одних пробелов.",
		},
		{kind.ItemWhitespace, family.Argument}: {
			NamedTyped: "Аргумент {name} типа {type} не может содержать строки из одних пробелов.",
			Named:      "Аргумент {name} не может содержать строки из одних пробелов.",
			Generic:    "Аргумент не может содержать строки из одних пробелов.",
		},

		{kind.ItemNulls, family.Value}: {
			NamedTyped: "Коллекция {name} типа {type} не может содержать null-элементы.",
			Named:      "Коллекция {name} не может содержать null-элементы.",
			Generic:    "Коллекция не может содержать null-элементы.",
		},
		{kind.ItemNulls, family.Argument}: {
			NamedTyped: "Аргумент {name} типа {type} не может содержать null-элементы.",
			Named:      "Аргумент {name} не может содержать null-элементы.",
			Generic:    "Аргумент не может содержать null-элементы.",
		},

		{kind.ItemFailsPredicate, family.Value}: {
			NamedTyped: "Коллекция {name} типа {type} не может содержать недопустимые элементы.",
			Named:      "Коллекция {name} не может содержать недопустимые элементы.",
			Generic:    "Коллекция не может содержать недопустимые элементы.",
		},
		{kind.ItemFailsPredicate, family.Argument}: {
			NamedTyped: "Аргумент {name} типа {type} не может содержать недопустимые элементы.",
			Named:      "Аргумент {name} не может содержать недопустимые элементы.",
			Generic:    "Аргумент не может содержать недопустимые элементы.",
		},

		// -- keyed and operation kinds (value family only) --------------

		{kind.ItemNotFound, family.Value}: {
			Keyed:   `Элемент с ключом "{key}" не найден.`,
			Generic: "Элемент не найден.",
		},

		{kind.OperationAborted, family.Value}: {
			Full:          "Операция {operation} прервана: {reason}.",
			OperationOnly: "Операция {operation} прервана.",
			ReasonOnly:    "Операция прервана: {reason}.",
			Generic:       "Операция прервана.",
		},
	}
}
